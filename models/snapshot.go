package models

// Snapshot describes one imported dataset
type Snapshot struct {
	ID             string                `json:"id"`        // unique id
	LoadedAt       int64                 `json:"loaded_at"` // unix timestamp in ms
	Source         string                `json:"source"`    // file name or "upload"
	ClusterCount   int                   `json:"cluster_count"`
	ValidatorCount int                   `json:"validator_count"`
	Schemas        map[SchemaVariant]int `json:"schemas"` // clusters per detected input shape
}

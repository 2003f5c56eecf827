package models

// ClusterSummary is one ranked segment of the stake distribution chart
type ClusterSummary struct {
	ID                   string   `json:"id"`
	DisplayIPs           []string `json:"displayIps"`
	StakeUi              float64  `json:"stakeUi"`
	StakePercent         float64  `json:"stakePercent"` // 0 when the dataset has no stake
	ValidatorCount       int      `json:"validatorCount"`
	StakedIdentityCount  int      `json:"stakedIdentityCount"`
	JitoValidatorCount   int      `json:"jitoValidatorCount"`
	JitoStakeUi          float64  `json:"jitoStakeUi"`
	SfdpParticipantCount int      `json:"sfdpParticipantCount"`
	Color                string   `json:"color"`
}

// ValidatorGroup classifies a validator by program membership
type ValidatorGroup string

const (
	GroupSFDPandJito ValidatorGroup = "SFDPandJito"
	GroupSFDP        ValidatorGroup = "SFDP"
	GroupJito        ValidatorGroup = "JITO"
	GroupRegular     ValidatorGroup = "Regular"
)

// ValidatorSlice is one ranked segment of the validator stake chart
type ValidatorSlice struct {
	IdentityPubkey   string         `json:"identityPubkey"` // full key, used for selection
	DisplayName      string         `json:"displayName"`
	ClusterID        string         `json:"clusterId"`
	IP               string         `json:"ip"`
	ActivatedStakeUi float64        `json:"activatedStakeUi"`
	StakeLabel       string         `json:"stakeLabel"`
	Commission       *float64       `json:"commission,omitempty"`
	Version          string         `json:"version,omitempty"`
	Group            ValidatorGroup `json:"group"`
	Color            string         `json:"color"`
}

// TableRow is one row of the validator details table
type TableRow struct {
	ID                string  `json:"id"`
	ClusterID         string  `json:"clusterId"`
	IPs               string  `json:"ips"`
	IdentityPubkey    string  `json:"identityPubkey"`
	VoteAccountPubkey string  `json:"voteAccountPubkey"`
	ActivatedStakeUi  float64 `json:"activatedStakeUi"`
	JitoStakepool     bool    `json:"jitoStakepool"`
	JitoStakeUi       float64 `json:"jitoStakeUi"`
	SfdpParticipant   bool    `json:"sfdpParticipant"`
	SfdpStatus        string  `json:"sfdpStatus,omitempty"`
}

type TimelinePoint struct {
	TimestampMs int64  `json:"timestampMs"`
	ClusterID   string `json:"clusterId"`
	IP          string `json:"ip"`
	Pubkey      string `json:"pubkey"`
	IsStaked    bool   `json:"isStaked"`
}

// Timeline splits identity observations into staked and unstaked series
type Timeline struct {
	Staked   []TimelinePoint `json:"staked"`
	Unstaked []TimelinePoint `json:"unstaked"`
	Skipped  int             `json:"skipped"` // observations with unparseable timestamps
}

type NetworkNode struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Group ValidatorGroup `json:"group"`
	Title string         `json:"title"`
	Value uint64         `json:"value"`
}

type NetworkEdge struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
	Title string `json:"title"`
}

// Network links validator identities that share infrastructure
type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// View is everything the rendering layer needs for one selection
type View struct {
	Selection            SelectionState   `json:"selection"`
	Label                string           `json:"label"`
	Clusters             []ClusterSummary `json:"clusters"`
	ActiveClusterIndex   int              `json:"activeClusterIndex"` // -1 when nothing is selected or found
	Projection           Dataset          `json:"projection"`
	Validators           []ValidatorSlice `json:"validators"`
	ActiveValidatorIndex int              `json:"activeValidatorIndex"`
	Rows                 []TableRow       `json:"rows"`
}

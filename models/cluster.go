package models

import "strings"

// ClusterIDSeparator joins a cluster's IPs into its identifier
const ClusterIDSeparator = "|"

// SchemaVariant records which input shape a cluster was normalized from
type SchemaVariant string

const (
	SchemaLegacy  SchemaVariant = "legacy"  // single "ip" per entry
	SchemaCluster SchemaVariant = "cluster" // "ips" sequence per entry
)

// SfdpMembership is the resolved SFDP participation of a validator.
// Status keeps the raw program state when the dataset provided one.
type SfdpMembership struct {
	Participant bool   `json:"participant"`
	Status      string `json:"status,omitempty"`
}

// Approved reports whether the validator counts as an approved SFDP member
func (s SfdpMembership) Approved() bool {
	if !s.Participant {
		return false
	}
	return s.Status == "" || strings.EqualFold(s.Status, "Approved")
}

type ValidatorRecord struct {
	IdentityPubkey    string         `json:"identityPubkey"`
	VoteAccountPubkey string         `json:"voteAccountPubkey"`
	ActivatedStakeUi  float64        `json:"activatedStakeUi"` // stake in SOL, never negative
	JitoStakepool     bool           `json:"jitoStakepool"`
	JitoStakeUi       float64        `json:"jitoStakeUi"`
	Sfdp              SfdpMembership `json:"sfdp"`
	Commission        *float64       `json:"commission,omitempty"`
	Version           string         `json:"version,omitempty"`
	Delinquent        bool           `json:"delinquent"`
	SkipRate          *float64       `json:"skipRate,omitempty"`
}

// IdentityObservation is one identity seen at a cluster's IP
type IdentityObservation struct {
	Pubkey    string `json:"pubkey"`
	IsStaked  bool   `json:"isStaked"`
	Timestamp string `json:"timestamp"` // raw, possibly a gossip record file name
}

type Cluster struct {
	IPs              []string              `json:"ips"` // ips[0] is the display IP
	Identities       []IdentityObservation `json:"identities"`
	StakedIdentities []string              `json:"stakedIdentities"`
	Validators       []ValidatorRecord     `json:"validators"`
	TotalStakeUi     float64               `json:"totalStakeUi"` // declared, not recomputed
	Schema           SchemaVariant         `json:"schema"`
}

// ID returns the cluster identifier: all IPs joined in order
func (c Cluster) ID() string {
	return strings.Join(c.IPs, ClusterIDSeparator)
}

// CanonicalIP returns the first IP, or "unknown" for a cluster without any
func (c Cluster) CanonicalIP() string {
	if len(c.IPs) == 0 {
		return "unknown"
	}
	return c.IPs[0]
}

// Dataset is the ordered list of clusters as read from the source.
// It is shared read-only; derived views always allocate.
type Dataset []Cluster

// ValidatorCount returns the total number of validator records
func (d Dataset) ValidatorCount() int {
	n := 0
	for _, c := range d {
		n += len(c.Validators)
	}
	return n
}

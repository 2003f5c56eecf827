package models

import "strings"

// DefaultClusterLabel is shown when no cluster is selected
const DefaultClusterLabel = "All clusters"

const clusterLabelSeparator = ", "

// SelectionState is the user's current cluster and validator selection.
// An empty string means "not selected".
type SelectionState struct {
	ClusterID       string `json:"selectedClusterId,omitempty"`
	ValidatorPubkey string `json:"selectedValidatorPubkey,omitempty"`
}

// SelectCluster toggles the cluster selection. Any change of cluster clears the validator.
func (s *SelectionState) SelectCluster(id string) {
	if id == s.ClusterID {
		s.ClusterID = ""
		s.ValidatorPubkey = ""
		return
	}
	s.ClusterID = id
	s.ValidatorPubkey = ""
}

// SelectValidator toggles the validator selection without touching the cluster
func (s *SelectionState) SelectValidator(pubkey string) {
	if pubkey == s.ValidatorPubkey {
		s.ValidatorPubkey = ""
		return
	}
	s.ValidatorPubkey = pubkey
}

// ClusterLabel renders the selected cluster for display
func (s SelectionState) ClusterLabel() string {
	if s.ClusterID == "" {
		return DefaultClusterLabel
	}
	return strings.Join(strings.Split(s.ClusterID, ClusterIDSeparator), clusterLabelSeparator)
}

func (s SelectionState) HasCluster() bool {
	return s.ClusterID != ""
}

func (s SelectionState) HasValidator() bool {
	return s.ValidatorPubkey != ""
}

package models

import "testing"

func TestSelectClusterToggles(t *testing.T) {
	var s SelectionState
	s.SelectCluster("1.1.1.1")
	if s.ClusterID != "1.1.1.1" {
		t.Fatalf("expected cluster selected, got %q", s.ClusterID)
	}
	s.SelectCluster("1.1.1.1")
	if s != (SelectionState{}) {
		t.Fatalf("expected empty selection after toggle, got %+v", s)
	}
}

func TestSelectClusterClearsValidator(t *testing.T) {
	var s SelectionState
	s.SelectCluster("A")
	s.SelectValidator("val")
	s.SelectCluster("B")
	if s.ValidatorPubkey != "" {
		t.Fatalf("validator selection leaked across clusters: %+v", s)
	}
	if s.ClusterID != "B" {
		t.Fatalf("expected cluster B, got %q", s.ClusterID)
	}

	s.SelectValidator("val")
	s.SelectCluster("B")
	if s != (SelectionState{}) {
		t.Fatalf("expected toggle-off to clear both fields, got %+v", s)
	}
}

func TestSelectClusterTwiceRestoresState(t *testing.T) {
	start := SelectionState{ClusterID: "A", ValidatorPubkey: "val"}
	s := start
	s.SelectCluster("B")
	s.SelectCluster("B")
	if s != (SelectionState{}) {
		t.Fatalf("expected empty selection, got %+v", s)
	}

	s = SelectionState{}
	s.SelectCluster("C")
	s.SelectCluster("C")
	if s != (SelectionState{}) {
		t.Fatalf("expected no-op round trip, got %+v", s)
	}
}

func TestSelectValidatorToggles(t *testing.T) {
	s := SelectionState{ClusterID: "A"}
	s.SelectValidator("v1")
	s.SelectValidator("v2")
	if s.ValidatorPubkey != "v2" || s.ClusterID != "A" {
		t.Fatalf("unexpected state %+v", s)
	}
	s.SelectValidator("v2")
	if s.ValidatorPubkey != "" || s.ClusterID != "A" {
		t.Fatalf("expected validator cleared and cluster kept, got %+v", s)
	}
}

func TestClusterLabel(t *testing.T) {
	var s SelectionState
	if got := s.ClusterLabel(); got != DefaultClusterLabel {
		t.Fatalf("expected default label, got %q", got)
	}
	s.SelectCluster("1.1.1.1|2.2.2.2")
	if got := s.ClusterLabel(); got != "1.1.1.1, 2.2.2.2" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestClusterID(t *testing.T) {
	c := Cluster{IPs: []string{"1.1.1.1", "2.2.2.2"}}
	if c.ID() != "1.1.1.1|2.2.2.2" {
		t.Fatalf("unexpected id %q", c.ID())
	}
	if c.CanonicalIP() != "1.1.1.1" {
		t.Fatalf("unexpected canonical ip %q", c.CanonicalIP())
	}
	if (Cluster{}).CanonicalIP() != "unknown" {
		t.Fatalf("expected unknown for empty cluster")
	}
}

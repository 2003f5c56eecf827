package dashboard

import (
	"fmt"
	"math"

	"sybil-dashboard/models"
)

// BuildNetwork links every pair of validator identities found behind the same
// cluster. Identities without a peer are left out.
func BuildNetwork(ds models.Dataset) models.Network {
	net := models.Network{
		Nodes: []models.NetworkNode{},
		Edges: []models.NetworkEdge{},
	}

	nodeIndex := make(map[string]int)
	seenEdges := make(map[string]struct{})
	addNode := func(v models.ValidatorRecord) {
		if _, ok := nodeIndex[v.IdentityPubkey]; ok {
			return
		}
		nodeIndex[v.IdentityPubkey] = len(net.Nodes)
		net.Nodes = append(net.Nodes, models.NetworkNode{
			ID:    v.IdentityPubkey,
			Label: truncate(v.IdentityPubkey, displayNameLength),
			Group: GroupOf(v),
			Title: nodeTitle(v),
			Value: uint64(math.Round(v.ActivatedStakeUi)),
		})
	}

	for _, c := range ds {
		ip := c.CanonicalIP()
		vals := c.Validators
		for i := 0; i < len(vals); i++ {
			for j := i + 1; j < len(vals); j++ {
				a, b := vals[i], vals[j]
				if a.IdentityPubkey == "" || b.IdentityPubkey == "" || a.IdentityPubkey == b.IdentityPubkey {
					continue
				}
				from, to := a.IdentityPubkey, b.IdentityPubkey
				if to < from {
					from, to = to, from
				}
				id := fmt.Sprintf("edge:%s::%s::%s", from, to, ip)
				if _, dup := seenEdges[id]; dup {
					continue
				}
				seenEdges[id] = struct{}{}

				addNode(a)
				addNode(b)
				net.Edges = append(net.Edges, models.NetworkEdge{
					ID:    id,
					From:  from,
					To:    to,
					Label: ip,
					Title: "Shared IP: " + ip,
				})
			}
		}
	}
	return net
}

func nodeTitle(v models.ValidatorRecord) string {
	jito := "no"
	if v.JitoStakepool {
		jito = "yes"
	}
	sfdp := "Not participant"
	if v.Sfdp.Participant {
		sfdp = v.Sfdp.Status
		if sfdp == "" {
			sfdp = "Participant"
		}
	}
	return fmt.Sprintf("Identity: %s\nVote: %s\nStake: %.3f SOL\nJito pool: %s\nJito stake: %.3f SOL\nSFDP: %s",
		v.IdentityPubkey, v.VoteAccountPubkey, v.ActivatedStakeUi, jito, v.JitoStakeUi, sfdp)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package dashboard

import (
	"errors"
	"fmt"
	"sort"

	"sybil-dashboard/models"
)

// SortKey selects how cluster summaries are ranked
type SortKey string

const (
	SortStake                SortKey = "stake"
	SortValidatorCount       SortKey = "validator-count"
	SortIP                   SortKey = "ip"
	SortJitoValidatorCount   SortKey = "jito-validator-count"
	SortJitoStake            SortKey = "jito-stake"
	SortSfdpParticipantCount SortKey = "sfdp-participant-count"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeys lists every accepted key, default first
var SortKeys = []SortKey{
	SortStake, SortValidatorCount, SortIP, SortJitoValidatorCount, SortJitoStake, SortSfdpParticipantCount,
}

// ParseSortKey validates a user-supplied key; empty means SortStake
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortStake, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// ClusterSummaries ranks every cluster of ds by key. Percentages are relative to
// the sum of declared cluster totals and are 0 when that sum is 0.
func ClusterSummaries(ds models.Dataset, key SortKey) []models.ClusterSummary {
	var totalStake float64
	for _, c := range ds {
		totalStake += c.TotalStakeUi
	}

	summaries := make([]models.ClusterSummary, 0, len(ds))
	for _, c := range ds {
		summaries = append(summaries, summarize(c, totalStake))
	}

	less := summaryOrder(key)
	sort.SliceStable(summaries, func(i, j int) bool {
		return less(&summaries[i], &summaries[j])
	})

	for i := range summaries {
		summaries[i].Color = colorAt(clusterPalette, i)
	}
	return summaries
}

func summarize(c models.Cluster, totalStake float64) models.ClusterSummary {
	s := models.ClusterSummary{
		ID:                  c.ID(),
		DisplayIPs:          append([]string(nil), c.IPs...),
		StakeUi:             c.TotalStakeUi,
		ValidatorCount:      len(c.Validators),
		StakedIdentityCount: len(c.StakedIdentities),
	}
	if totalStake > 0 {
		s.StakePercent = 100 * c.TotalStakeUi / totalStake
	}
	for _, v := range c.Validators {
		if v.JitoStakepool {
			s.JitoValidatorCount++
		}
		s.JitoStakeUi += v.JitoStakeUi
		if v.Sfdp.Participant {
			s.SfdpParticipantCount++
		}
	}
	return s
}

func summaryOrder(key SortKey) func(a, b *models.ClusterSummary) bool {
	switch key {
	case SortIP:
		return func(a, b *models.ClusterSummary) bool {
			return displayIP(a) < displayIP(b)
		}
	case SortValidatorCount:
		return func(a, b *models.ClusterSummary) bool { return a.ValidatorCount > b.ValidatorCount }
	case SortJitoValidatorCount:
		return func(a, b *models.ClusterSummary) bool { return a.JitoValidatorCount > b.JitoValidatorCount }
	case SortJitoStake:
		return func(a, b *models.ClusterSummary) bool { return a.JitoStakeUi > b.JitoStakeUi }
	case SortSfdpParticipantCount:
		return func(a, b *models.ClusterSummary) bool { return a.SfdpParticipantCount > b.SfdpParticipantCount }
	default:
		return func(a, b *models.ClusterSummary) bool { return a.StakeUi > b.StakeUi }
	}
}

func displayIP(s *models.ClusterSummary) string {
	if len(s.DisplayIPs) == 0 {
		return ""
	}
	return s.DisplayIPs[0]
}

// indexOfCluster returns the rank of id in summaries, or -1
func indexOfCluster(summaries []models.ClusterSummary, id string) int {
	if id == "" {
		return -1
	}
	for i := range summaries {
		if summaries[i].ID == id {
			return i
		}
	}
	return -1
}

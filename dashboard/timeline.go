package dashboard

import (
	"sort"

	"sybil-dashboard/dataset"
	"sybil-dashboard/models"
)

// BuildTimeline places every identity observation of ds on a time axis
func BuildTimeline(ds models.Dataset) models.Timeline {
	tl := models.Timeline{
		Staked:   []models.TimelinePoint{},
		Unstaked: []models.TimelinePoint{},
	}

	var points []models.TimelinePoint
	for _, c := range ds {
		clusterID := c.ID()
		ip := c.CanonicalIP()
		for _, obs := range c.Identities {
			ts, ok := dataset.ParseTimestamp(obs.Timestamp)
			if !ok {
				tl.Skipped++
				continue
			}
			points = append(points, models.TimelinePoint{
				TimestampMs: ts.UnixMilli(),
				ClusterID:   clusterID,
				IP:          ip,
				Pubkey:      obs.Pubkey,
				IsStaked:    obs.IsStaked,
			})
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].TimestampMs < points[j].TimestampMs
	})
	for _, p := range points {
		if p.IsStaked {
			tl.Staked = append(tl.Staked, p)
		} else {
			tl.Unstaked = append(tl.Unstaked, p)
		}
	}
	return tl
}

package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil-dashboard/models"
)

func TestBuildTimeline(t *testing.T) {
	ds := models.Dataset{
		{
			IPs: []string{"1.1.1.1", "1.1.1.2"},
			Identities: []models.IdentityObservation{
				{Pubkey: "late", IsStaked: true, Timestamp: "2024-05-02_00:00:00.json"},
				{Pubkey: "early", IsStaked: true, Timestamp: "2024-05-01_00:00:00.json"},
				{Pubkey: "broken", IsStaked: true, Timestamp: "not-a-time"},
			},
		},
		{
			IPs: []string{"2.2.2.2"},
			Identities: []models.IdentityObservation{
				{Pubkey: "hotswap", IsStaked: false, Timestamp: "2024-05-01T06:00:00Z"},
			},
		},
	}

	tl := BuildTimeline(ds)
	require.Len(t, tl.Staked, 2)
	assert.Equal(t, "early", tl.Staked[0].Pubkey)
	assert.Equal(t, "late", tl.Staked[1].Pubkey)
	assert.Equal(t, "1.1.1.1", tl.Staked[0].IP)
	assert.Equal(t, "1.1.1.1|1.1.1.2", tl.Staked[0].ClusterID)
	assert.Less(t, tl.Staked[0].TimestampMs, tl.Staked[1].TimestampMs)

	require.Len(t, tl.Unstaked, 1)
	assert.Equal(t, "hotswap", tl.Unstaked[0].Pubkey)
	assert.Equal(t, 1, tl.Skipped)
}

func TestBuildTimelineEmpty(t *testing.T) {
	tl := BuildTimeline(nil)
	assert.NotNil(t, tl.Staked)
	assert.NotNil(t, tl.Unstaked)
	assert.Zero(t, tl.Skipped)
}

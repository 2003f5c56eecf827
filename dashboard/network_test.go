package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil-dashboard/models"
)

func TestBuildNetwork(t *testing.T) {
	net := BuildNetwork(exampleDataset())

	// only cluster A has two identities behind it
	require.Len(t, net.Edges, 1)
	edge := net.Edges[0]
	assert.Equal(t, "Aval1111", edge.From)
	assert.Equal(t, "Aval2222", edge.To)
	assert.Equal(t, "1.1.1.1", edge.Label)
	assert.Equal(t, "edge:Aval1111::Aval2222::1.1.1.1", edge.ID)

	require.Len(t, net.Nodes, 2)
	assert.Equal(t, "Aval1111", net.Nodes[0].ID)
	assert.Equal(t, "Aval1111", net.Nodes[0].Label)
	assert.Equal(t, models.GroupJito, net.Nodes[0].Group)
	assert.Equal(t, uint64(200), net.Nodes[0].Value)
	assert.Contains(t, net.Nodes[0].Title, "Jito pool: yes")
}

func TestBuildNetworkDeduplicates(t *testing.T) {
	c := models.Cluster{
		IPs: []string{"5.5.5.5"},
		Validators: []models.ValidatorRecord{
			validator("zeta", 1, false),
			validator("alpha", 2, false),
			validator("zeta", 1, false),
			validator("", 3, false),
		},
	}
	net := BuildNetwork(models.Dataset{c, c})

	require.Len(t, net.Edges, 1)
	assert.Equal(t, "alpha", net.Edges[0].From)
	assert.Equal(t, "zeta", net.Edges[0].To)
	assert.Len(t, net.Nodes, 2)
}

func TestBuildNetworkEmpty(t *testing.T) {
	net := BuildNetwork(nil)
	assert.Empty(t, net.Nodes)
	assert.Empty(t, net.Edges)
}

package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil-dashboard/models"
)

func TestProjectSelectedCluster(t *testing.T) {
	ds := exampleDataset()
	proj := Project(ds, models.SelectionState{ClusterID: clusterA})

	require.Len(t, proj, 1)
	assert.Equal(t, clusterA, proj[0].ID())
	assert.Len(t, proj[0].Validators, 2)
}

func TestProjectSelectedValidator(t *testing.T) {
	ds := exampleDataset()
	proj := Project(ds, models.SelectionState{ClusterID: clusterA, ValidatorPubkey: "Aval2222"})

	require.Len(t, proj, 1)
	require.Len(t, proj[0].Validators, 1)
	assert.Equal(t, "Aval2222", proj[0].Validators[0].IdentityPubkey)

	// source untouched
	assert.Len(t, ds[1].Validators, 2)
}

func TestProjectValidatorWithoutCluster(t *testing.T) {
	proj := Project(exampleDataset(), models.SelectionState{ValidatorPubkey: "Bval1111"})

	require.Len(t, proj, 2)
	assert.Len(t, proj[0].Validators, 1)
	assert.Empty(t, proj[1].Validators)
}

func TestProjectStaleSelection(t *testing.T) {
	proj := Project(exampleDataset(), models.SelectionState{ClusterID: "9.9.9.9", ValidatorPubkey: "Aval1111"})
	assert.NotNil(t, proj)
	assert.Empty(t, proj)
}

func TestProjectRoundTripsWhenCleared(t *testing.T) {
	ds := exampleDataset()
	sel := models.SelectionState{}
	sel.SelectCluster(clusterA)
	require.Len(t, Project(ds, sel), 1)

	sel.SelectCluster(clusterA)
	assert.Equal(t, ds, Project(ds, sel))
}

func TestProjectReturnsNewView(t *testing.T) {
	ds := exampleDataset()
	proj := Project(ds, models.SelectionState{})
	proj[0].TotalStakeUi = 12345
	assert.Equal(t, 100.0, ds[0].TotalStakeUi)
}

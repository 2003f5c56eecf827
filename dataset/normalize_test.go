package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil-dashboard/models"
)

func TestDecodeClusterShape(t *testing.T) {
	doc := `[
	  {
	    "ips": ["10.0.0.1", "10.0.0.2"],
	    "identities": [{"pubkey": "AAA", "is_staked": true, "timestamp": "2024-05-01_12:30:00.json"}],
	    "staked_identities": ["AAA", "BBB"],
	    "validators_info": [
	      {"identity_pubkey": "AAA", "vote_account_pubkey": "VA", "activated_stake_ui": 1500.5,
	       "jito_stakepool": true, "jito_stake_ui": 200, "sfdp_participant": true, "sfdp_status": "Approved"},
	      {"identity_pubkey": "BBB", "vote_account_pubkey": "VB", "activated_stake_ui": 99,
	       "jito_stakepool": false, "sfdp_participant": false, "sfdp_status": null}
	    ],
	    "total_stake_ui": 1599.5
	  }
	]`

	ds, report, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds, 1)

	c := ds[0]
	assert.Equal(t, "10.0.0.1|10.0.0.2", c.ID())
	assert.Equal(t, models.SchemaCluster, c.Schema)
	assert.Equal(t, 1599.5, c.TotalStakeUi)
	assert.Equal(t, []string{"AAA", "BBB"}, c.StakedIdentities)
	require.Len(t, c.Identities, 1)
	assert.True(t, c.Identities[0].IsStaked)
	assert.Equal(t, "2024-05-01_12:30:00.json", c.Identities[0].Timestamp)

	require.Len(t, c.Validators, 2)
	assert.Equal(t, "AAA", c.Validators[0].IdentityPubkey)
	assert.Equal(t, "VA", c.Validators[0].VoteAccountPubkey)
	assert.Equal(t, 1500.5, c.Validators[0].ActivatedStakeUi)
	assert.True(t, c.Validators[0].JitoStakepool)
	assert.Equal(t, 200.0, c.Validators[0].JitoStakeUi)
	assert.Equal(t, models.SfdpMembership{Participant: true, Status: "Approved"}, c.Validators[0].Sfdp)
	assert.False(t, c.Validators[1].Sfdp.Participant)
	assert.Equal(t, 0.0, c.Validators[1].JitoStakeUi)

	assert.Equal(t, 1, report.Schemas[models.SchemaCluster])
	assert.Zero(t, report.DefaultedField)
}

func TestDecodeLegacyShape(t *testing.T) {
	doc := `[
	  {
	    "ip": "1.2.3.4",
	    "identities": [],
	    "staked_identities": ["X"],
	    "validators_info": [
	      {"identityPubkey": "X", "voteAccountPubkey": "VX", "activatedStake": 2500000000000,
	       "commission": 5, "version": "1.18.0", "jito_stakepool": false, "jito_stake_ui": 0}
	    ],
	    "total_stakeUI": 2500
	  }
	]`

	ds, report, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds, 1)

	c := ds[0]
	assert.Equal(t, []string{"1.2.3.4"}, c.IPs)
	assert.Equal(t, models.SchemaLegacy, c.Schema)
	assert.Equal(t, 2500.0, c.TotalStakeUi)
	require.Len(t, c.Validators, 1)
	assert.Equal(t, 2500.0, c.Validators[0].ActivatedStakeUi)
	require.NotNil(t, c.Validators[0].Commission)
	assert.Equal(t, 5.0, *c.Validators[0].Commission)
	assert.Equal(t, "1.18.0", c.Validators[0].Version)
	assert.Equal(t, 1, report.Schemas[models.SchemaLegacy])
}

func TestSfdpStatusOnlySchema(t *testing.T) {
	doc := `[{"ips": ["9.9.9.9"], "validators": [
	  {"identityPubkey": "A", "sfdpStatus": "approved"},
	  {"identityPubkey": "B", "sfdpStatus": "Rejected"},
	  {"identityPubkey": "C"}
	], "totalStakeUi": 0}]`

	ds, _, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	vals := ds[0].Validators
	assert.True(t, vals[0].Sfdp.Participant)
	assert.False(t, vals[1].Sfdp.Participant)
	assert.Equal(t, "Rejected", vals[1].Sfdp.Status)
	assert.False(t, vals[2].Sfdp.Participant)
}

func TestMalformedFieldsDefault(t *testing.T) {
	doc := `[{"ips": ["5.5.5.5"], "validators": [
	  {"identityPubkey": "A", "activatedStakeUi": "lots", "jitoStakeUi": -4, "jitoStakepool": "yes-ish"},
	  {"activatedStakeUi": -1},
	  "not-a-validator"
	]}]`

	ds, report, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds[0].Validators, 2)

	a := ds[0].Validators[0]
	assert.Equal(t, 0.0, a.ActivatedStakeUi)
	assert.Equal(t, 0.0, a.JitoStakeUi)
	assert.False(t, a.JitoStakepool)
	assert.Equal(t, "", ds[0].Validators[1].IdentityPubkey)
	assert.Equal(t, 0.0, ds[0].TotalStakeUi)
	assert.Equal(t, 1, report.SkippedRecords)
	assert.Positive(t, report.DefaultedField)
}

func TestNumericStringsAreAccepted(t *testing.T) {
	doc := `[{"ips": ["5.5.5.5"], "totalStakeUi": "42.5", "validators": [{"identityPubkey": "A", "activatedStakeUi": "42.5"}]}]`

	ds, _, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 42.5, ds[0].TotalStakeUi)
	assert.Equal(t, 42.5, ds[0].Validators[0].ActivatedStakeUi)
}

func TestStructurallyInvalidInput(t *testing.T) {
	cases := map[string]string{
		"object":   `{"ip": "1.1.1.1"}`,
		"scalar":   `42`,
		"not json": `[{"ips": [`,
		"element":  `["1.1.1.1"]`,
		"mixed":    `[{"ips": ["1.1.1.1"]}, 7]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeBytes([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestClustersWithoutAddressesAreSkipped(t *testing.T) {
	doc := `[
	  {"ips": ["1.1.1.1"], "totalStakeUi": 10},
	  {"ips": [], "totalStakeUi": 5},
	  {"validators": [{"identityPubkey": "X"}]},
	  {"ip": "2.2.2.2"}
	]`

	ds, report, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "1.1.1.1", ds[0].ID())
	assert.Equal(t, "2.2.2.2", ds[1].ID())
	assert.Equal(t, 2, report.SkippedRecords)
	assert.Equal(t, map[models.SchemaVariant]int{models.SchemaCluster: 1, models.SchemaLegacy: 1}, report.Schemas)
}

func TestEmptyDataset(t *testing.T) {
	ds, report, err := DecodeBytes([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, ds)
	assert.Empty(t, report.Schemas)
}

func TestDuplicateClusterIDsAreReported(t *testing.T) {
	doc := `[{"ips": ["1.1.1.1"]}, {"ip": "1.1.1.1"}]`

	ds, report, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, ds, 2)
	assert.Equal(t, []string{"1.1.1.1"}, report.DuplicateIDs)
}

func TestNormalizeAcceptsParsedMaps(t *testing.T) {
	raw := []map[string]interface{}{
		{"ips": []interface{}{"7.7.7.7"}, "totalStakeUi": 10.0},
	}
	ds, _, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, 10.0, ds[0].TotalStakeUi)
	assert.NotNil(t, ds[0].Validators)
}

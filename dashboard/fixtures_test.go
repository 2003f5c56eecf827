package dashboard

import "sybil-dashboard/models"

func validator(pubkey string, stake float64, jito bool) models.ValidatorRecord {
	return models.ValidatorRecord{
		IdentityPubkey:    pubkey,
		VoteAccountPubkey: "vote-" + pubkey,
		ActivatedStakeUi:  stake,
		JitoStakepool:     jito,
	}
}

// exampleDataset is the two-cluster dataset used throughout the dashboard tests
func exampleDataset() models.Dataset {
	return models.Dataset{
		{
			IPs:              []string{"2.2.2.2"},
			StakedIdentities: []string{"Bval1111"},
			Validators:       []models.ValidatorRecord{validator("Bval1111", 100, false)},
			TotalStakeUi:     100,
		},
		{
			IPs:              []string{"1.1.1.1"},
			StakedIdentities: []string{"Aval1111", "Aval2222"},
			Validators: []models.ValidatorRecord{
				validator("Aval1111", 200, true),
				validator("Aval2222", 100, false),
			},
			TotalStakeUi: 300,
		},
	}
}

const (
	clusterA = "1.1.1.1"
	clusterB = "2.2.2.2"
)

package dashboard

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sybil-dashboard/models"
)

const displayNameLength = 8

var stakePrinter = message.NewPrinter(language.English)

// RankValidators flattens every validator of ds into one list ordered by stake,
// largest first. Equal stakes keep their dataset order.
func RankValidators(ds models.Dataset) []models.ValidatorSlice {
	ranked := make([]models.ValidatorSlice, 0, ds.ValidatorCount())
	for _, c := range ds {
		clusterID := c.ID()
		ip := c.CanonicalIP()
		for _, v := range c.Validators {
			ranked = append(ranked, models.ValidatorSlice{
				IdentityPubkey:   v.IdentityPubkey,
				DisplayName:      DisplayName(v.IdentityPubkey),
				ClusterID:        clusterID,
				IP:               ip,
				ActivatedStakeUi: v.ActivatedStakeUi,
				StakeLabel:       FormatStake(v.ActivatedStakeUi),
				Commission:       v.Commission,
				Version:          v.Version,
				Group:            GroupOf(v),
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ActivatedStakeUi > ranked[j].ActivatedStakeUi
	})
	for i := range ranked {
		ranked[i].Color = colorAt(validatorPalette, i)
	}
	return ranked
}

// DisplayName shortens an identity key for chart labels
func DisplayName(pubkey string) string {
	r := []rune(pubkey)
	if len(r) <= displayNameLength {
		return pubkey
	}
	return string(r[:displayNameLength]) + "..."
}

// FormatStake renders a stake amount as "1,234.56 SOL"
func FormatStake(stake float64) string {
	return stakePrinter.Sprintf("%.2f SOL", stake)
}

// GroupOf classifies a validator for coloring
func GroupOf(v models.ValidatorRecord) models.ValidatorGroup {
	sfdp := v.Sfdp.Approved()
	switch {
	case sfdp && v.JitoStakepool:
		return models.GroupSFDPandJito
	case sfdp:
		return models.GroupSFDP
	case v.JitoStakepool:
		return models.GroupJito
	default:
		return models.GroupRegular
	}
}

func indexOfValidator(ranked []models.ValidatorSlice, pubkey string) int {
	if pubkey == "" {
		return -1
	}
	for i := range ranked {
		if ranked[i].IdentityPubkey == pubkey {
			return i
		}
	}
	return -1
}

package dashboard

import "sybil-dashboard/models"

// Project narrows ds to the selected cluster and validator. The source dataset is
// never modified. A selected cluster that no longer exists yields an empty dataset.
func Project(ds models.Dataset, sel models.SelectionState) models.Dataset {
	clusters := ds
	if sel.HasCluster() {
		clusters = nil
		for _, c := range ds {
			if c.ID() == sel.ClusterID {
				clusters = models.Dataset{c}
				break
			}
		}
	}

	out := make(models.Dataset, 0, len(clusters))
	for _, c := range clusters {
		if sel.HasValidator() {
			c.Validators = filterValidators(c.Validators, sel.ValidatorPubkey)
		}
		out = append(out, c)
	}
	return out
}

func filterValidators(vals []models.ValidatorRecord, pubkey string) []models.ValidatorRecord {
	out := make([]models.ValidatorRecord, 0, 1)
	for _, v := range vals {
		if v.IdentityPubkey == pubkey {
			out = append(out, v)
		}
	}
	return out
}

// clusterOnly drops the validator part of a selection
func clusterOnly(sel models.SelectionState) models.SelectionState {
	return models.SelectionState{ClusterID: sel.ClusterID}
}

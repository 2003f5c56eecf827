package dashboard

import "sybil-dashboard/models"

// BuildView derives every visual aggregate for one selection. It is a pure
// function of its arguments.
func BuildView(ds models.Dataset, sel models.SelectionState, key SortKey) models.View {
	clusters := ClusterSummaries(ds, key)
	// the validator chart keeps showing the whole selected cluster so that the
	// selected validator can be toggled off again
	validators := RankValidators(Project(ds, clusterOnly(sel)))
	projection := Project(ds, sel)

	return models.View{
		Selection:            sel,
		Label:                sel.ClusterLabel(),
		Clusters:             clusters,
		ActiveClusterIndex:   indexOfCluster(clusters, sel.ClusterID),
		Projection:           projection,
		Validators:           validators,
		ActiveValidatorIndex: indexOfValidator(validators, sel.ValidatorPubkey),
		Rows:                 TableRows(projection),
	}
}

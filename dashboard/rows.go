package dashboard

import (
	"strings"

	"sybil-dashboard/models"
)

// TableRows lists one row per validator in dataset order
func TableRows(ds models.Dataset) []models.TableRow {
	rows := make([]models.TableRow, 0, ds.ValidatorCount())
	for _, c := range ds {
		clusterID := c.ID()
		ips := strings.Join(c.IPs, ", ")
		for _, v := range c.Validators {
			rows = append(rows, models.TableRow{
				ID:                clusterID + "-" + v.IdentityPubkey,
				ClusterID:         clusterID,
				IPs:               ips,
				IdentityPubkey:    v.IdentityPubkey,
				VoteAccountPubkey: v.VoteAccountPubkey,
				ActivatedStakeUi:  v.ActivatedStakeUi,
				JitoStakepool:     v.JitoStakepool,
				JitoStakeUi:       v.JitoStakeUi,
				SfdpParticipant:   v.Sfdp.Participant,
				SfdpStatus:        v.Sfdp.Status,
			})
		}
	}
	return rows
}

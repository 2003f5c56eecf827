package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"sybil-dashboard/logger"
	"sybil-dashboard/models"
)

// ErrInvalidDataset is returned when the input is not an array of cluster-shaped objects
var ErrInvalidDataset = errors.New("invalid dataset")

// Report summarizes what normalization had to recover from
type Report struct {
	Schemas        map[models.SchemaVariant]int `json:"schemas"`
	DefaultedField int                          `json:"defaulted_fields"`
	SkippedRecords int                          `json:"skipped_records"`
	DuplicateIDs   []string                     `json:"duplicate_ids,omitempty"`
}

// Decode parses a raw dataset document and normalizes it
func Decode(r io.Reader) (models.Dataset, Report, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, Report{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return Normalize(raw)
}

// DecodeBytes is Decode over an in-memory document
func DecodeBytes(data []byte) (models.Dataset, Report, error) {
	return Decode(bytes.NewReader(data))
}

// Normalize converts an already-parsed document into the canonical dataset.
// Individual malformed fields fall back to zero values and clusters without any
// address are skipped; only a document that is not a list of objects is rejected.
func Normalize(raw interface{}) (models.Dataset, Report, error) {
	report := Report{Schemas: make(map[models.SchemaVariant]int)}

	var items []interface{}
	switch t := raw.(type) {
	case []interface{}:
		items = t
	case []map[string]interface{}:
		items = make([]interface{}, len(t))
		for i := range t {
			items[i] = t[i]
		}
	default:
		return nil, report, fmt.Errorf("%w: expected an array of clusters, got %T", ErrInvalidDataset, raw)
	}

	ds := make(models.Dataset, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		rec, ok := asRecord(item)
		if !ok {
			return nil, report, fmt.Errorf("%w: element %d is %T, not an object", ErrInvalidDataset, i, item)
		}
		cluster, ok := normalizeCluster(rec, &report)
		if !ok {
			logger.Logger.Warn("Skipping cluster without addresses", zap.Int("index", i))
			report.SkippedRecords++
			continue
		}

		id := cluster.ID()
		if _, dup := seen[id]; dup {
			logger.Logger.Warn("Duplicate cluster id in dataset", zap.String("cluster_id", id), zap.Int("index", i))
			report.DuplicateIDs = append(report.DuplicateIDs, id)
		}
		seen[id] = struct{}{}

		report.Schemas[cluster.Schema]++
		ds = append(ds, cluster)
	}
	return ds, report, nil
}

// normalizeCluster reports false when the element carries neither "ips" nor "ip"
func normalizeCluster(rec record, report *Report) (models.Cluster, bool) {
	var c models.Cluster

	// shape detection: a non-empty "ips" list wins over a legacy single "ip"
	if ips := rec.stringList(clusterIPsKeys); len(ips) > 0 {
		c.IPs = ips
		c.Schema = models.SchemaCluster
	} else if ip := rec.str(clusterIPKeys); ip != "" {
		c.IPs = []string{ip}
		c.Schema = models.SchemaLegacy
	} else {
		return c, false
	}

	total, ok := rec.number(clusterTotalStakeKeys)
	if !ok {
		report.defaulted(c.ID(), "totalStakeUi")
	}
	c.TotalStakeUi = total
	c.StakedIdentities = rec.stringList(clusterStakedKeys)
	if c.StakedIdentities == nil {
		c.StakedIdentities = []string{}
	}

	identities, skipped := rec.records(clusterIdentitiesKeys)
	report.SkippedRecords += skipped
	c.Identities = make([]models.IdentityObservation, 0, len(identities))
	for _, ir := range identities {
		isStaked, _ := ir.boolean(identityIsStakedKeys)
		c.Identities = append(c.Identities, models.IdentityObservation{
			Pubkey:    ir.str(identityPubkeyKeys),
			IsStaked:  isStaked,
			Timestamp: ir.str(identityTimestampKeys),
		})
	}

	validators, skipped := rec.records(clusterValidatorsKeys)
	report.SkippedRecords += skipped
	c.Validators = make([]models.ValidatorRecord, 0, len(validators))
	for _, vr := range validators {
		c.Validators = append(c.Validators, normalizeValidator(c.ID(), vr, report))
	}
	return c, true
}

func normalizeValidator(clusterID string, rec record, report *Report) models.ValidatorRecord {
	v := models.ValidatorRecord{
		IdentityPubkey:    rec.str(validatorIdentityKeys),
		VoteAccountPubkey: rec.str(validatorVoteAccountKeys),
		Version:           rec.str(validatorVersionKeys),
		Commission:        rec.optionalNumber(validatorCommissionKeys),
		SkipRate:          rec.optionalNumber(validatorSkipRateKeys),
	}
	if v.IdentityPubkey == "" {
		report.defaulted(clusterID, "identityPubkey")
	}

	if stake, ok := rec.number(validatorStakeUiKeys); ok {
		v.ActivatedStakeUi = stake
	} else if lamports, ok := rec.number(validatorStakeLamportsKeys); ok {
		v.ActivatedStakeUi = lamports / lamportsPerSol
	} else {
		report.defaulted(clusterID, "activatedStakeUi")
	}

	v.JitoStakepool, _ = rec.boolean(validatorJitoPoolKeys)
	v.JitoStakeUi, _ = rec.number(validatorJitoStakeUiKeys)
	v.Delinquent, _ = rec.boolean(validatorDelinquentKeys)
	v.Sfdp = resolveSfdp(rec)
	return v
}

// resolveSfdp folds the two historical SFDP representations into one pair.
// The boolean flag is authoritative when present; otherwise the status string
// alone decides, and only an approved status counts as participation.
func resolveSfdp(rec record) models.SfdpMembership {
	status := rec.str(validatorSfdpStatusKeys)
	if flag, ok := rec.boolean(validatorSfdpParticipantKey); ok {
		return models.SfdpMembership{Participant: flag, Status: status}
	}
	return models.SfdpMembership{
		Participant: strings.EqualFold(status, sfdpApprovedStatus),
		Status:      status,
	}
}

func (r *Report) defaulted(clusterID, field string) {
	r.DefaultedField++
	logger.Logger.Debug("Defaulted malformed field",
		zap.String("cluster_id", clusterID), zap.String("field", field))
}

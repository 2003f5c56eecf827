package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"sybil-dashboard/db"
	"sybil-dashboard/models"
)

const (
	snapshotPrefix = "snapshot:"
	clusterPrefix  = "cluster:"
	latestKey      = "latest"
)

// It abstracts the storage layer from the dashboard
type SnapshotRepositoryInterface interface {
	PutSnapshot(snap *models.Snapshot, ds models.Dataset) error
	GetLatestSnapshot() (*models.Snapshot, error)
	GetDataset(snapshotID string) (models.Dataset, error)
}

// SnapshotRepository keeps the most recent imported dataset in LevelDB.
// Clusters are stored one per key, indexed by their position in the source.
type SnapshotRepository struct {
	db *db.LevelDB
}

// NewSnapshotRepository creates and returns a new SnapshotRepository instance
func NewSnapshotRepository(db *db.LevelDB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func clusterKey(snapshotID string, index int) []byte {
	return []byte(fmt.Sprintf("%s%s:%08d", clusterPrefix, snapshotID, index))
}

// PutSnapshot replaces the stored dataset with ds in a single batch
func (r *SnapshotRepository) PutSnapshot(snap *models.Snapshot, ds models.Dataset) error {
	batch := new(leveldb.Batch)

	for _, prefix := range []string{snapshotPrefix, clusterPrefix} {
		iter := r.db.NewPrefixIterator([]byte(prefix))
		for iter.Next() {
			batch.Delete(append([]byte(nil), iter.Key()...))
		}
		iter.Release()
		if err := iter.Error(); err != nil {
			return err
		}
	}

	meta, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	batch.Put([]byte(snapshotPrefix+snap.ID), meta)

	for i, c := range ds {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		batch.Put(clusterKey(snap.ID, i), data)
	}
	batch.Put([]byte(latestKey), []byte(snap.ID))

	return r.db.Write(batch)
}

// GetLatestSnapshot returns the most recent snapshot, or nil when nothing was imported yet
func (r *SnapshotRepository) GetLatestSnapshot() (*models.Snapshot, error) {
	id, err := r.db.Get([]byte(latestKey))
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := r.db.Get([]byte(snapshotPrefix + string(id)))
	if err != nil {
		return nil, err
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetDataset loads the clusters of a snapshot in their original order
func (r *SnapshotRepository) GetDataset(snapshotID string) (models.Dataset, error) {
	iter := r.db.NewPrefixIterator([]byte(clusterPrefix + snapshotID + ":"))
	defer iter.Release()

	ds := models.Dataset{}
	for iter.Next() {
		var c models.Cluster
		if err := json.Unmarshal(iter.Value(), &c); err != nil {
			return nil, err
		}
		ds = append(ds, c)
	}
	return ds, iter.Error()
}

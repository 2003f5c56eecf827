package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sybil-dashboard/logger"
	"sybil-dashboard/metrics"
	"sybil-dashboard/models"
	"sybil-dashboard/repository"
)

var (
	ErrNoDataset       = errors.New("no dataset loaded")
	ErrSessionNotFound = errors.New("session not found")
)

// Dashboard serves derived views over the active dataset and owns the
// selection state of every open session. The active dataset is replaced, never
// modified; sessions are mutated and rendered under the same lock so a reader
// never sees a validator selection paired with a cluster it does not belong to.
type Dashboard struct {
	repo repository.SnapshotRepositoryInterface
	mux  sync.RWMutex

	snapshot *models.Snapshot
	dataset  models.Dataset

	sessions   map[string]*session
	sessionTTL time.Duration
	now        func() time.Time
}

// session is one open view's selection; it expires after sessionTTL without access
type session struct {
	sel      models.SelectionState
	lastSeen time.Time
}

// DefaultSessionTTL is how long an untouched session is kept
const DefaultSessionTTL = 30 * time.Minute

// Option configures a Dashboard
type Option func(*Dashboard)

// WithSessionTTL sets the idle time after which a session is dropped.
// A non-positive ttl keeps sessions until they are closed.
func WithSessionTTL(ttl time.Duration) Option {
	return func(d *Dashboard) {
		d.sessionTTL = ttl
	}
}

func NewDashboard(repo repository.SnapshotRepositoryInterface, opts ...Option) *Dashboard {
	d := &Dashboard{
		repo:       repo,
		sessions:   make(map[string]*session),
		sessionTTL: DefaultSessionTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Restore activates the most recently stored snapshot, if any
func (d *Dashboard) Restore() error {
	snap, err := d.repo.GetLatestSnapshot()
	if err != nil {
		return err
	}
	if snap == nil {
		logger.Logger.Info("No stored dataset to restore")
		return nil
	}
	ds, err := d.repo.GetDataset(snap.ID)
	if err != nil {
		return err
	}

	d.mux.Lock()
	defer d.mux.Unlock()
	d.activate(snap, ds)
	return nil
}

// Import persists an already normalized dataset and makes it the active one.
// Open sessions keep their selection; a selection that no longer matches
// simply projects to nothing.
func (d *Dashboard) Import(source string, ds models.Dataset) (*models.Snapshot, error) {
	snap := &models.Snapshot{
		ID:             uuid.NewString(),
		LoadedAt:       nowMillis(),
		Source:         source,
		ClusterCount:   len(ds),
		ValidatorCount: ds.ValidatorCount(),
		Schemas:        make(map[models.SchemaVariant]int),
	}
	for _, c := range ds {
		snap.Schemas[c.Schema]++
	}

	d.mux.Lock()
	defer d.mux.Unlock()

	if err := d.repo.PutSnapshot(snap, ds); err != nil {
		metrics.DatasetImports.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.DatasetImports.WithLabelValues("ok").Inc()
	d.activate(snap, ds)
	return snap, nil
}

func (d *Dashboard) activate(snap *models.Snapshot, ds models.Dataset) {
	d.snapshot = snap
	d.dataset = ds
	metrics.DatasetClusters.Set(float64(snap.ClusterCount))
	metrics.DatasetValidators.Set(float64(snap.ValidatorCount))
	logger.Logger.Info("Activated dataset",
		zap.String("snapshot_id", snap.ID),
		zap.String("source", snap.Source),
		zap.Int("clusters", snap.ClusterCount),
		zap.Int("validators", snap.ValidatorCount))
}

// Snapshot returns the metadata of the active dataset
func (d *Dashboard) Snapshot() (*models.Snapshot, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	if d.snapshot == nil {
		return nil, ErrNoDataset
	}
	snap := *d.snapshot
	return &snap, nil
}

// current returns the active dataset; callers must hold the lock
func (d *Dashboard) current() (models.Dataset, error) {
	if d.snapshot == nil {
		return nil, ErrNoDataset
	}
	return d.dataset, nil
}

// Clusters ranks the clusters of the active dataset and returns the id of the
// snapshot they were computed from
func (d *Dashboard) Clusters(key SortKey) ([]models.ClusterSummary, string, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	ds, err := d.current()
	if err != nil {
		return nil, "", err
	}
	defer observe("clusters", time.Now())
	return ClusterSummaries(ds, key), d.snapshot.ID, nil
}

// View renders a caller-owned selection against the active dataset and returns
// the id of the snapshot it was rendered from
func (d *Dashboard) View(sel models.SelectionState, key SortKey) (models.View, string, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	ds, err := d.current()
	if err != nil {
		return models.View{}, "", err
	}
	return d.render(ds, sel, key), d.snapshot.ID, nil
}

// Timeline places the identity observations of the selected cluster on a time axis
func (d *Dashboard) Timeline(sel models.SelectionState) (models.Timeline, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	ds, err := d.current()
	if err != nil {
		return models.Timeline{}, err
	}
	defer observe("timeline", time.Now())
	return BuildTimeline(Project(ds, clusterOnly(sel))), nil
}

// Network links identities sharing infrastructure within the selected cluster
func (d *Dashboard) Network(sel models.SelectionState) (models.Network, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	ds, err := d.current()
	if err != nil {
		return models.Network{}, err
	}
	defer observe("network", time.Now())
	return BuildNetwork(Project(ds, clusterOnly(sel))), nil
}

// NewSession opens a session with nothing selected. Expired sessions are
// dropped first so abandoned views do not accumulate.
func (d *Dashboard) NewSession() string {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.pruneSessions()
	id := uuid.NewString()
	d.sessions[id] = &session{lastSeen: d.now()}
	metrics.ActiveSessions.Set(float64(len(d.sessions)))
	return id
}

// CloseSession forgets a session's selection
func (d *Dashboard) CloseSession(id string) error {
	d.mux.Lock()
	defer d.mux.Unlock()
	if _, err := d.lookupSession(id); err != nil {
		return err
	}
	delete(d.sessions, id)
	metrics.ActiveSessions.Set(float64(len(d.sessions)))
	return nil
}

// SessionView renders a session's current selection
func (d *Dashboard) SessionView(id string, key SortKey) (models.View, error) {
	d.mux.Lock()
	defer d.mux.Unlock()
	s, err := d.lookupSession(id)
	if err != nil {
		return models.View{}, err
	}
	ds, err := d.current()
	if err != nil {
		return models.View{}, err
	}
	return d.render(ds, s.sel, key), nil
}

// PruneSessions drops every session idle for longer than the session TTL and
// returns how many were dropped
func (d *Dashboard) PruneSessions() int {
	d.mux.Lock()
	defer d.mux.Unlock()
	return d.pruneSessions()
}

// lookupSession finds a live session and marks it as used; callers must hold the write lock
func (d *Dashboard) lookupSession(id string) (*session, error) {
	s, ok := d.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := d.now()
	if d.expired(s, now) {
		delete(d.sessions, id)
		metrics.ActiveSessions.Set(float64(len(d.sessions)))
		logger.Logger.Debug("Session expired", zap.String("session_id", id))
		return nil, ErrSessionNotFound
	}
	s.lastSeen = now
	return s, nil
}

func (d *Dashboard) expired(s *session, now time.Time) bool {
	return d.sessionTTL > 0 && now.Sub(s.lastSeen) > d.sessionTTL
}

// pruneSessions drops expired sessions; callers must hold the write lock
func (d *Dashboard) pruneSessions() int {
	now := d.now()
	dropped := 0
	for id, s := range d.sessions {
		if d.expired(s, now) {
			delete(d.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		metrics.ActiveSessions.Set(float64(len(d.sessions)))
		logger.Logger.Debug("Pruned idle sessions", zap.Int("dropped", dropped), zap.Int("open", len(d.sessions)))
	}
	return dropped
}

// SelectCluster toggles a session's cluster and returns the recomputed view
func (d *Dashboard) SelectCluster(id, clusterID string, key SortKey) (models.View, error) {
	return d.mutate(id, key, "cluster", func(sel *models.SelectionState) {
		sel.SelectCluster(clusterID)
	})
}

// SelectValidator toggles a session's validator and returns the recomputed view
func (d *Dashboard) SelectValidator(id, pubkey string, key SortKey) (models.View, error) {
	return d.mutate(id, key, "validator", func(sel *models.SelectionState) {
		sel.SelectValidator(pubkey)
	})
}

func (d *Dashboard) mutate(id string, key SortKey, kind string, apply func(*models.SelectionState)) (models.View, error) {
	d.mux.Lock()
	defer d.mux.Unlock()
	s, err := d.lookupSession(id)
	if err != nil {
		return models.View{}, err
	}
	ds, err := d.current()
	if err != nil {
		return models.View{}, err
	}

	sel := &s.sel
	apply(sel)
	metrics.SelectionChanges.WithLabelValues(kind).Inc()
	logger.Logger.Debug("Selection changed",
		zap.String("session_id", id),
		zap.String("kind", kind),
		zap.String("cluster_id", sel.ClusterID),
		zap.String("validator", sel.ValidatorPubkey))

	return d.render(ds, *sel, key), nil
}

func (d *Dashboard) render(ds models.Dataset, sel models.SelectionState, key SortKey) models.View {
	defer observe("view", time.Now())
	return BuildView(ds, sel, key)
}

func observe(view string, start time.Time) {
	metrics.ViewRecomputations.WithLabelValues(view).Inc()
	metrics.ViewRecomputeDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

// nowMillis returns current time in milliseconds
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"sybil-dashboard/cache"
	"sybil-dashboard/dashboard"
	"sybil-dashboard/dataset"
	"sybil-dashboard/logger"
	"sybil-dashboard/models"
)

// maxDatasetBytes bounds uploaded dataset documents
const maxDatasetBytes = 64 << 20

// Handler contains the HTTP handlers for the dashboard API endpoints
type Handler struct {
	Dashboard *dashboard.Dashboard
	Cache     *cache.ViewCache
}

// NewHandler creates and returns a new Handler instance
func NewHandler(d *dashboard.Dashboard, c *cache.ViewCache) *Handler {
	return &Handler{Dashboard: d, Cache: c}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps dashboard errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrInvalidDataset), errors.Is(err, dashboard.ErrUnknownSortKey):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrNoDataset):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Logger.Error(msg, zap.Error(err))
	} else {
		logger.Logger.Warn(msg, zap.Error(err))
	}
	writeError(w, status, err.Error())
}

func selectionFromQuery(r *http.Request) models.SelectionState {
	q := r.URL.Query()
	return models.SelectionState{
		ClusterID:       q.Get("cluster"),
		ValidatorPubkey: q.Get("validator"),
	}
}

// ImportDataset handles POST requests replacing the active dataset
func (h *Handler) ImportDataset(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxDatasetBytes)
	ds, report, err := dataset.Decode(body)
	if err != nil {
		h.fail(w, "Failed to decode dataset", err)
		return
	}

	snap, err := h.Dashboard.Import("upload", ds)
	if err != nil {
		h.fail(w, "Failed to import dataset", err)
		return
	}
	h.Cache.Clear()

	logger.Logger.Info("Imported dataset",
		zap.String("snapshot_id", snap.ID),
		zap.Int("defaulted_fields", report.DefaultedField),
		zap.Int("skipped_records", report.SkippedRecords))

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Dataset imported successfully",
		"snapshot": snap,
		"report":   report,
	})
}

// GetDataset handles GET requests for the active dataset's metadata
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Dashboard.Snapshot()
	if err != nil {
		h.fail(w, "Failed to get dataset", err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GetClusters handles GET requests for the ranked cluster summaries
func (h *Handler) GetClusters(w http.ResponseWriter, r *http.Request) {
	key, err := dashboard.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, "Invalid sort key", err)
		return
	}
	snap, err := h.Dashboard.Snapshot()
	if err != nil {
		h.fail(w, "Failed to get clusters", err)
		return
	}
	if data, ok := h.Cache.Get(clustersCacheKey(snap.ID, key)); ok {
		writeRaw(w, data)
		return
	}

	summaries, snapshotID, err := h.Dashboard.Clusters(key)
	if err != nil {
		h.fail(w, "Failed to get clusters", err)
		return
	}
	data, err := h.Cache.Put(clustersCacheKey(snapshotID, key), summaries)
	if err != nil {
		h.fail(w, "Failed to encode clusters", err)
		return
	}
	writeRaw(w, data)
}

// GetView handles GET requests for the full view of a selection given in the query
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	key, err := dashboard.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, "Invalid sort key", err)
		return
	}
	snap, err := h.Dashboard.Snapshot()
	if err != nil {
		h.fail(w, "Failed to get view", err)
		return
	}

	sel := selectionFromQuery(r)
	if data, ok := h.Cache.Get(viewCacheKey(snap.ID, key, sel)); ok {
		writeRaw(w, data)
		return
	}

	view, snapshotID, err := h.Dashboard.View(sel, key)
	if err != nil {
		h.fail(w, "Failed to get view", err)
		return
	}
	data, err := h.Cache.Put(viewCacheKey(snapshotID, key, sel), view)
	if err != nil {
		h.fail(w, "Failed to encode view", err)
		return
	}
	writeRaw(w, data)
}

// cache keys carry the id of the snapshot the value was built from
func clustersCacheKey(snapshotID string, key dashboard.SortKey) string {
	return fmt.Sprintf("%s:clusters:%s", snapshotID, key)
}

func viewCacheKey(snapshotID string, key dashboard.SortKey, sel models.SelectionState) string {
	return fmt.Sprintf("%s:view:%s:%q:%q", snapshotID, key, sel.ClusterID, sel.ValidatorPubkey)
}

// GetTimeline handles GET requests for the identity timeline of the selected cluster
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	tl, err := h.Dashboard.Timeline(selectionFromQuery(r))
	if err != nil {
		h.fail(w, "Failed to get timeline", err)
		return
	}
	writeJSON(w, http.StatusOK, tl)
}

// GetNetwork handles GET requests for the shared-infrastructure graph
func (h *Handler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	net, err := h.Dashboard.Network(selectionFromQuery(r))
	if err != nil {
		h.fail(w, "Failed to get network", err)
		return
	}
	writeJSON(w, http.StatusOK, net)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"sybil-dashboard/dashboard"
	"sybil-dashboard/logger"
)

type selectClusterRequest struct {
	ID string `json:"id"`
}

type selectValidatorRequest struct {
	Pubkey string `json:"pubkey"`
}

// CreateSession opens a new selection session
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.Dashboard.NewSession()
	logger.Logger.Info("Opened session", zap.String("session_id", id))
	writeJSON(w, http.StatusCreated, map[string]string{
		"message":    "Session created successfully",
		"session_id": id,
	})
}

// GetSession returns the view for a session's current selection
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	key, err := dashboard.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, "Invalid sort key", err)
		return
	}
	view, err := h.Dashboard.SessionView(mux.Vars(r)["id"], key)
	if err != nil {
		h.fail(w, "Failed to get session view", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SelectCluster toggles the session's cluster selection
func (h *Handler) SelectCluster(w http.ResponseWriter, r *http.Request) {
	key, err := dashboard.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, "Invalid sort key", err)
		return
	}
	var req selectClusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Logger.Error("Failed to decode cluster selection", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	view, err := h.Dashboard.SelectCluster(mux.Vars(r)["id"], req.ID, key)
	if err != nil {
		h.fail(w, "Failed to select cluster", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SelectValidator toggles the session's validator selection
func (h *Handler) SelectValidator(w http.ResponseWriter, r *http.Request) {
	key, err := dashboard.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.fail(w, "Invalid sort key", err)
		return
	}
	var req selectValidatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Logger.Error("Failed to decode validator selection", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	view, err := h.Dashboard.SelectValidator(mux.Vars(r)["id"], req.Pubkey, key)
	if err != nil {
		h.fail(w, "Failed to select validator", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeleteSession closes a session and drops its selection
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Dashboard.CloseSession(id); err != nil {
		h.fail(w, "Failed to close session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session closed"})
}

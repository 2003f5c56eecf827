package routers

import (
	"sybil-dashboard/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all the HTTP routes for the dashboard
func RegisterRoutes(r *mux.Router, h *handlers.Handler) {

	// Replaces the active dataset with the uploaded document
	r.HandleFunc("/dataset", h.ImportDataset).Methods("POST")

	// Describes the active dataset
	r.HandleFunc("/dataset", h.GetDataset).Methods("GET")

	// Stake distribution by cluster, ranked by ?sort=
	r.HandleFunc("/clusters", h.GetClusters).Methods("GET")

	// Full view for a selection passed as ?cluster=&validator=
	r.HandleFunc("/view", h.GetView).Methods("GET")

	// Identity timeline and shared-infrastructure graph, optionally for ?cluster=
	r.HandleFunc("/timeline", h.GetTimeline).Methods("GET")
	r.HandleFunc("/network", h.GetNetwork).Methods("GET")

	// Server-held selection sessions
	r.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	r.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	r.HandleFunc("/sessions/{id}", h.DeleteSession).Methods("DELETE")
	r.HandleFunc("/sessions/{id}/cluster", h.SelectCluster).Methods("POST")
	r.HandleFunc("/sessions/{id}/validator", h.SelectValidator).Methods("POST")
}

// RegisterMetrics exposes the prometheus collectors
func RegisterMetrics(r *mux.Router) {
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

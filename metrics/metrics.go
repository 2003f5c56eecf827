package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ViewRecomputations counts derived view computations by view name
	ViewRecomputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sybil_dashboard_view_recomputations_total",
			Help: "Total number of derived view recomputations",
		},
		[]string{"view"},
	)

	// ViewRecomputeDuration tracks how long a derived view takes to build, in seconds
	ViewRecomputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sybil_dashboard_view_recompute_duration_seconds",
			Help:    "Duration of derived view recomputations in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"view"},
	)

	// SelectionChanges counts selection mutations by kind (cluster or validator)
	SelectionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sybil_dashboard_selection_changes_total",
			Help: "Total number of selection changes",
		},
		[]string{"kind"},
	)

	// ActiveSessions tracks the number of open selection sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sybil_dashboard_sessions",
			Help: "Number of open selection sessions",
		},
	)

	// DatasetImports counts dataset imports by result
	DatasetImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sybil_dashboard_dataset_imports_total",
			Help: "Total number of dataset imports",
		},
		[]string{"status"},
	)

	// DatasetClusters and DatasetValidators describe the active dataset
	DatasetClusters = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sybil_dashboard_dataset_clusters",
			Help: "Number of clusters in the active dataset",
		},
	)

	DatasetValidators = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sybil_dashboard_dataset_validators",
			Help: "Number of validators in the active dataset",
		},
	)

	// CacheLookups counts view cache lookups by result (hit or miss)
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sybil_dashboard_cache_lookups_total",
			Help: "Total number of rendered view cache lookups",
		},
		[]string{"result"},
	)
)

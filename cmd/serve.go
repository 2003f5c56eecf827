package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/urfave/negroni"
	"go.uber.org/zap"

	"sybil-dashboard/cache"
	"sybil-dashboard/dashboard"
	"sybil-dashboard/db"
	"sybil-dashboard/handlers"
	"sybil-dashboard/logger"
	"sybil-dashboard/repository"
	"sybil-dashboard/routers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Logger.Sync()

	logger.Logger.Info("Starting dashboard server...")

	// Connect to LevelDB
	ldb, err := db.NewLevelDB(cfg.LevelDB.Path)
	if err != nil {
		logger.Logger.Error("Failed to open leveldb", zap.Error(err))
		return err
	}
	defer ldb.Close()

	// Initialize dashboard with repository, restoring the last imported dataset
	d := dashboard.NewDashboard(repository.NewSnapshotRepository(ldb),
		dashboard.WithSessionTTL(cfg.Session.TTL()))
	if err := d.Restore(); err != nil {
		logger.Logger.Error("Failed to restore dataset", zap.Error(err))
		return err
	}
	if cfg.Dataset.File != "" {
		if _, err := importFile(d, cfg.Dataset.File); err != nil {
			return err
		}
	}

	h := handlers.NewHandler(d, cache.NewViewCache(cfg.Cache.SizeMB, cfg.Cache.TTL()))

	// Setup router
	r := mux.NewRouter()
	routers.RegisterRoutes(r, h)
	if cfg.Metrics.Enabled {
		routers.RegisterMetrics(r)
	}

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.Use(negroni.HandlerFunc(logRequest))
	n.UseHandler(r)

	// HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      n,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("Server stopped", zap.Error(err))
		}
	}()

	logger.Logger.Info("Server running on port", zap.Int("port", cfg.Server.Port))

	stopSweep := make(chan struct{})
	defer close(stopSweep)
	if ttl := cfg.Session.TTL(); ttl > 0 {
		go sweepSessions(d, ttl, stopSweep)
	}

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Logger.Info("Shutdown signal received, exiting...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// sweepSessions drops idle sessions every ttl until stop is closed
func sweepSessions(d *dashboard.Dashboard, ttl time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			d.PruneSessions()
		case <-stop:
			return
		}
	}
}

// logRequest logs every request once the downstream handlers have run
func logRequest(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(rw, r)

	status := 0
	if nrw, ok := rw.(negroni.ResponseWriter); ok {
		status = nrw.Status()
	}
	logger.Logger.Debug("Handled request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)))
}

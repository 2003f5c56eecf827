package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sybil-dashboard/dashboard"
	"sybil-dashboard/dataset"
	"sybil-dashboard/db"
	"sybil-dashboard/logger"
	"sybil-dashboard/models"
	"sybil-dashboard/repository"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a dataset document into the store",
	Long:  "Normalize a sybil analysis JSON document and store it as the active dataset",
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("file", "", "Path to the dataset JSON document")
	importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Logger.Sync()

	file, _ := cmd.Flags().GetString("file")

	ldb, err := db.NewLevelDB(cfg.LevelDB.Path)
	if err != nil {
		return err
	}
	defer ldb.Close()

	d := dashboard.NewDashboard(repository.NewSnapshotRepository(ldb))
	snap, err := importFile(d, file)
	if err != nil {
		return err
	}
	cmd.Printf("imported %d clusters (%d validators) from %s as snapshot %s\n",
		snap.ClusterCount, snap.ValidatorCount, file, snap.ID)
	return nil
}

// readFile decodes and normalizes a dataset document from disk
func readFile(path string) (models.Dataset, dataset.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dataset.Report{}, err
	}
	defer f.Close()
	return dataset.Decode(f)
}

func importFile(d *dashboard.Dashboard, path string) (*models.Snapshot, error) {
	ds, report, err := readFile(path)
	if err != nil {
		logger.Logger.Error("Failed to read dataset", zap.String("file", path), zap.Error(err))
		return nil, err
	}
	logger.Logger.Info("Read dataset",
		zap.String("file", path),
		zap.Int("clusters", len(ds)),
		zap.Int("defaulted_fields", report.DefaultedField),
		zap.Int("skipped_records", report.SkippedRecords),
		zap.Strings("duplicate_ids", report.DuplicateIDs))
	return d.Import(filepath.Base(path), ds)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sybil-dashboard/config"
	"sybil-dashboard/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sybil-dashboard",
	Short: "Validator cluster stake and sybil analysis dashboard",
	Long:  "Serves ranked cluster, validator and identity timeline views over a sybil analysis dataset",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "Path to the config file")
}

// setup loads the config and initializes the logger
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.AppLogFile, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cli implements the neo CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/loxinchi/NEO-project/internal/config"
	"github.com/loxinchi/NEO-project/internal/database"
	"github.com/loxinchi/NEO-project/internal/extract"
	"github.com/loxinchi/NEO-project/internal/logger"
	"github.com/spf13/cobra"
)

var (
	neoFile    string
	cadFile    string
	configPath string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "neo",
	Short: "Explore near-Earth objects and their close approaches",
	Long:  "Load NASA's NEO catalogue and close-approach data, then inspect objects, query approaches and export results.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&neoFile, "neofile", "", "NEO catalogue CSV (default: $NEO_DATA_DIR/neos.csv or data/neos.csv)")
	RootCmd.PersistentFlags().StringVar(&cadFile, "cadfile", "", "Close-approach JSON (default: $NEO_DATA_DIR/cad.json or data/cad.json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (default: ./"+config.DefaultFile+" if present)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// loadConfig resolves settings and installs the logger. Flags win over the
// config file and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if neoFile != "" {
		cfg.NEOFile = neoFile
	}
	if cadFile != "" {
		cfg.CADFile = cadFile
	}
	logger.Setup(logger.Config{Level: cfg.LogLevel, Verbose: verbose})
	return cfg, nil
}

// openDatabase loads both data files and links them.
func openDatabase(ctx context.Context, cfg config.Config) (*database.NEODatabase, error) {
	log := logger.L()

	neos, err := extract.LoadNEOs(ctx, cfg.NEOFile)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded neos", "path", cfg.NEOFile, "count", len(neos))

	approaches, err := extract.LoadApproaches(ctx, cfg.CADFile)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded close approaches", "path", cfg.CADFile, "count", len(approaches))

	return database.New(neos, approaches, log), nil
}

func textOutput() bool {
	return formatFlag == "text"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

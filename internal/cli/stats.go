package cli

import (
	"encoding/json"
	"fmt"

	"github.com/loxinchi/NEO-project/internal/database"
	"github.com/loxinchi/NEO-project/internal/extract"
	"github.com/spf13/cobra"
)

type statsResult struct {
	database.Stats
	CADDeclaredCount string `json:"cad_declared_count"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show data set counts",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("config", err)
	}
	db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		exitErr("load", err)
	}
	declared, err := extract.CADCount(cfg.CADFile)
	if err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(statsResult{Stats: db.Stats(), CADDeclaredCount: declared}, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/loxinchi/NEO-project/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List or read SQLite snapshot exports",
		Long:  "List the snapshots in a SQLite export file, or print one snapshot's rows with --id.",
		Run:   runSnapshots,
	}

	cmd.Flags().String("db", "", "SQLite export file (required)")
	cmd.Flags().String("id", "", "Print the rows of this snapshot")
	cmd.MarkFlagRequired("db")

	RootCmd.AddCommand(cmd)
}

func runSnapshots(cmd *cobra.Command, args []string) {
	dbPath, _ := cmd.Flags().GetString("db")
	id, _ := cmd.Flags().GetString("id")

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var v any
	if id != "" {
		rows, err := s.SnapshotRows(cmd.Context(), id)
		if err != nil {
			exitErr("snapshot", err)
		}
		v = rows
	} else {
		snaps, err := s.Snapshots(cmd.Context())
		if err != nil {
			exitErr("snapshots", err)
		}
		st, err := s.Stats(cmd.Context(), dbPath)
		if err != nil {
			exitErr("stats", err)
		}
		v = struct {
			Stats     *store.Stats     `json:"stats"`
			Snapshots []store.Snapshot `json:"snapshots"`
		}{st, snaps}
	}

	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/loxinchi/NEO-project/internal/filters"
	"github.com/loxinchi/NEO-project/internal/write"
	"github.com/spf13/cobra"
)

// defaultPrintLimit caps results printed to stdout when no --limit is given.
const defaultPrintLimit = 10

const dateLayout = "2006-01-02"

func init() {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query close approaches",
		Long:  "Query close approaches by date, distance, velocity, diameter and hazard. Results are printed, or written to --outfile (.csv, .json, .db).",
		Run:   runQuery,
	}
	addQueryFlags(cmd)
	cmd.Flags().StringP("outfile", "o", "", "Write results to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("date", "d", "", "Only approaches on this date (YYYY-MM-DD)")
	cmd.Flags().StringP("start-date", "s", "", "Only approaches on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringP("end-date", "e", "", "Only approaches on or before this date (YYYY-MM-DD)")
	cmd.Flags().Float64("min-distance", 0, "Minimum approach distance (au)")
	cmd.Flags().Float64("max-distance", 0, "Maximum approach distance (au)")
	cmd.Flags().Float64("min-velocity", 0, "Minimum relative velocity (km/s)")
	cmd.Flags().Float64("max-velocity", 0, "Maximum relative velocity (km/s)")
	cmd.Flags().Float64("min-diameter", 0, "Minimum NEO diameter (km)")
	cmd.Flags().Float64("max-diameter", 0, "Maximum NEO diameter (km)")
	cmd.Flags().Bool("hazardous", false, "Only potentially hazardous NEOs")
	cmd.Flags().Bool("not-hazardous", false, "Only NEOs that are not potentially hazardous")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0: config limit, or 10 when printing)")
	cmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
}

// criteriaFromFlags maps the flags that were set onto filter criteria.
func criteriaFromFlags(cmd *cobra.Command) (filters.Criteria, error) {
	var c filters.Criteria
	flags := cmd.Flags()

	dates := []struct {
		name string
		dst  **time.Time
	}{
		{"date", &c.Date},
		{"start-date", &c.StartDate},
		{"end-date", &c.EndDate},
	}
	for _, d := range dates {
		s, _ := flags.GetString(d.name)
		if s == "" {
			continue
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return c, fmt.Errorf("--%s: expected YYYY-MM-DD, got %q", d.name, s)
		}
		*d.dst = &t
	}

	bounds := []struct {
		name string
		dst  **float64
	}{
		{"min-distance", &c.DistanceMin},
		{"max-distance", &c.DistanceMax},
		{"min-velocity", &c.VelocityMin},
		{"max-velocity", &c.VelocityMax},
		{"min-diameter", &c.DiameterMin},
		{"max-diameter", &c.DiameterMax},
	}
	for _, b := range bounds {
		if !flags.Changed(b.name) {
			continue
		}
		v, _ := flags.GetFloat64(b.name)
		*b.dst = &v
	}

	if h, _ := flags.GetBool("hazardous"); h {
		c.Hazardous = &h
	}
	if nh, _ := flags.GetBool("not-hazardous"); nh {
		f := false
		c.Hazardous = &f
	}
	return c, nil
}

func runQuery(cmd *cobra.Command, args []string) {
	outfile, _ := cmd.Flags().GetString("outfile")
	runSelection(cmd, outfile)
}

// runSelection loads the data, applies the query flags and prints or writes the result.
func runSelection(cmd *cobra.Command, outfile string) {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		exitErr("query", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		exitErr("config", err)
	}
	db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		exitErr("load", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		exitErr("query", errors.New("--limit must not be negative"))
	}
	if limit == 0 {
		limit = cfg.Limit
	}
	if limit == 0 && outfile == "" {
		limit = defaultPrintLimit
	}

	results := filters.Limit(db.Query(filters.Create(criteria)...), limit)

	out := cmd.OutOrStdout()
	if outfile != "" {
		snap, err := write.WriteFile(cmd.Context(), outfile, results)
		if err != nil {
			exitErr("write", err)
		}
		if snap != nil {
			fmt.Fprintf(out, `{"ok":true,"written":%d,"snapshot":%q}`+"\n", len(results), snap.ID)
			return
		}
		fmt.Fprintf(out, `{"ok":true,"written":%d}`+"\n", len(results))
		return
	}

	if textOutput() {
		for _, ca := range results {
			fmt.Fprintln(out, ca)
		}
		return
	}
	if err := write.WriteJSON(out, results); err != nil {
		exitErr("write", err)
	}
}

// Package write exports close-approach query results as CSV, JSON or a
// SQLite snapshot.
package write

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/loxinchi/NEO-project/internal/model"
	"github.com/loxinchi/NEO-project/internal/store"
)

// CSVHeader is the column order of WriteCSV.
var CSVHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// Result is one exported approach with its NEO.
type Result struct {
	model.SerializedApproach
	NEO *model.SerializedNEO `json:"neo"`
}

// Results converts approaches to their export form. An unlinked approach
// gets a NEO carrying only its designation and an unknown diameter.
func Results(approaches []*model.CloseApproach) []Result {
	out := make([]Result, 0, len(approaches))
	for _, ca := range approaches {
		var n model.SerializedNEO
		if neo := ca.NEO(); neo != nil {
			n = neo.Serialize()
		} else {
			n = model.NewNearEarthObject(model.NEOParams{Designation: ca.Designation()}).Serialize()
		}
		out = append(out, Result{SerializedApproach: ca.Serialize(), NEO: &n})
	}
	return out
}

// WriteCSV writes one row per approach below CSVHeader. An unknown diameter
// is written as "nan".
func WriteCSV(w io.Writer, approaches []*model.CloseApproach) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range Results(approaches) {
		rec := []string{
			r.DatetimeUTC,
			strconv.FormatFloat(r.DistanceAU, 'f', -1, 64),
			strconv.FormatFloat(r.VelocityKmS, 'f', -1, 64),
			r.NEO.Designation,
			r.NEO.Name,
			r.NEO.DiameterKm.Text(),
			strconv.FormatBool(r.NEO.PotentiallyHazardous),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes an indented JSON array of results. An unknown diameter is
// written as null.
func WriteJSON(w io.Writer, approaches []*model.CloseApproach) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Results(approaches))
}

// WriteFile picks the format from the extension of path: .csv, .json, or
// .db/.sqlite for a SQLite snapshot. It returns the snapshot for SQLite
// output and nil otherwise.
func WriteFile(ctx context.Context, path string, approaches []*model.CloseApproach) (*store.Snapshot, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".json":
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		if ext == ".csv" {
			err = WriteCSV(f, approaches)
		} else {
			err = WriteJSON(f, approaches)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		return nil, nil
	case ".db", ".sqlite":
		s, err := store.NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.SaveSnapshot(ctx, approaches)
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .csv, .json, .db or .sqlite)", ext)
	}
}

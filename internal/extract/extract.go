// Package extract reads the NEO catalogue CSV and the close-approach JSON
// into model records.
package extract

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/loxinchi/NEO-project/internal/model"
)

// neoColumns lists the accepted header names per field, first match wins.
var neoColumns = map[string][]string{
	"designation": {"pdes", "designation"},
	"name":        {"name"},
	"hazardous":   {"pha", "hazardous"},
	"diameter":    {"diameter"},
}

// LoadNEOs reads the NEO catalogue at path.
func LoadNEOs(ctx context.Context, path string) ([]*model.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open neo file: %w", err)
	}
	defer f.Close()
	return ReadNEOs(ctx, f)
}

// ReadNEOs reads a NEO catalogue CSV with a header row.
func ReadNEOs(ctx context.Context, r io.Reader) ([]*model.NearEarthObject, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read neo header: %w", err)
	}
	idx := indexColumns(header, neoColumns)
	if _, ok := idx["designation"]; !ok {
		return nil, errors.New("neo csv: no designation column (pdes or designation)")
	}

	var neos []*model.NearEarthObject
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read neo line %d: %w", line, err)
		}
		neos = append(neos, model.NewNearEarthObject(model.NEOParams{
			Designation: field(rec, idx, "designation"),
			Name:        field(rec, idx, "name"),
			Hazardous:   field(rec, idx, "hazardous"),
			Diameter:    field(rec, idx, "diameter"),
		}))
	}
	return neos, nil
}

// cadFile is the layout of the JPL SBDB close-approach API response.
type cadFile struct {
	Count  string              `json:"count"`
	Fields []string            `json:"fields"`
	Data   [][]json.RawMessage `json:"data"`
}

var cadColumns = map[string][]string{
	"designation": {"des"},
	"time":        {"cd"},
	"distance":    {"dist"},
	"velocity":    {"v_rel"},
}

// LoadApproaches reads the close-approach data at path.
func LoadApproaches(ctx context.Context, path string) ([]*model.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cad file: %w", err)
	}
	defer f.Close()
	return ReadApproaches(ctx, f)
}

// ReadApproaches decodes close-approach JSON. Loading stops at the first row
// that fails to parse.
func ReadApproaches(ctx context.Context, r io.Reader) ([]*model.CloseApproach, error) {
	cad, err := decodeCAD(r)
	if err != nil {
		return nil, err
	}
	idx := indexColumns(cad.Fields, cadColumns)
	if _, ok := idx["time"]; !ok {
		return nil, errors.New("cad json: no cd field")
	}

	approaches := make([]*model.CloseApproach, 0, len(cad.Data))
	for i, row := range cad.Data {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec := make([]string, len(row))
		for j, cell := range row {
			rec[j] = cellString(cell)
		}
		ca, err := model.NewCloseApproach(model.ApproachParams{
			Time:        field(rec, idx, "time"),
			Designation: field(rec, idx, "designation"),
			Distance:    field(rec, idx, "distance"),
			Velocity:    field(rec, idx, "velocity"),
		})
		if err != nil {
			return nil, fmt.Errorf("cad row %d: %w", i, err)
		}
		approaches = append(approaches, ca)
	}
	return approaches, nil
}

// CADCount returns the record count the CAD file declares about itself.
func CADCount(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open cad file: %w", err)
	}
	defer f.Close()
	cad, err := decodeCAD(f)
	if err != nil {
		return "", err
	}
	return cad.Count, nil
}

func decodeCAD(r io.Reader) (*cadFile, error) {
	var cad cadFile
	if err := json.NewDecoder(r).Decode(&cad); err != nil {
		return nil, fmt.Errorf("parse cad json: %w", err)
	}
	return &cad, nil
}

// cellString turns a JSON cell into its raw text: strings are unquoted,
// null becomes "", numbers keep their literal form.
func cellString(cell json.RawMessage) string {
	raw := strings.TrimSpace(string(cell))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(cell, &s); err == nil {
		return s
	}
	return raw
}

func indexColumns(header []string, columns map[string][]string) map[string]int {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}
	idx := make(map[string]int, len(columns))
	for key, names := range columns {
		for _, n := range names {
			if i, ok := pos[n]; ok {
				idx[key] = i
				break
			}
		}
	}
	return idx
}

func field(rec []string, idx map[string]int, key string) string {
	i, ok := idx[key]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

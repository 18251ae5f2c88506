package write

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxinchi/NEO-project/internal/model"
	"github.com/loxinchi/NEO-project/internal/store"
)

func sample(t *testing.T) []*model.CloseApproach {
	t.Helper()
	eros := model.NewNearEarthObject(model.NEOParams{Designation: "433", Name: "Eros", Diameter: "16.84"})
	cl := model.NewNearEarthObject(model.NEOParams{Designation: "2015 CL", Hazardous: "Y"})

	a, err := model.NewCloseApproach(model.ApproachParams{Designation: "433", Time: "2000-Jan-05 14:24", Distance: "0.31", Velocity: "5.82", NEO: eros})
	require.NoError(t, err)
	b, err := model.NewCloseApproach(model.ApproachParams{Designation: "2015 CL", Time: "2000-Jan-01 00:00", Distance: "0.15", Velocity: "5.0", NEO: cl})
	require.NoError(t, err)
	c, err := model.NewCloseApproach(model.ApproachParams{Designation: "9999 ZZ", Time: "2001-Jan-01 00:00", Distance: "0.5", Velocity: "3"})
	require.NoError(t, err)
	return []*model.CloseApproach{a, b, c}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample(t)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"2000-Jan-05 14:24", "0.31", "5.82", "433", "Eros", "16.84", "false"}, rows[1])
	assert.Equal(t, []string{"2000-Jan-01 00:00", "0.15", "5", "2015 CL", "", "nan", "true"}, rows[2])
	assert.Equal(t, []string{"2001-Jan-01 00:00", "0.5", "3", "9999 ZZ", "", "nan", "false"}, rows[3])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample(t)[:2]))

	assert.JSONEq(t, `[
		{"datetime_utc": "2000-Jan-05 14:24", "distance_au": 0.31, "velocity_km_s": 5.82,
		 "neo": {"designation": "433", "name": "Eros", "diameter_km": 16.84, "potentially_hazardous": false}},
		{"datetime_utc": "2000-Jan-01 00:00", "distance_au": 0.15, "velocity_km_s": 5.0,
		 "neo": {"designation": "2015 CL", "name": "", "diameter_km": null, "potentially_hazardous": true}}
	]`, buf.String())

	var back []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.True(t, back[0].NEO.DiameterKm.Known())
	assert.False(t, back[1].NEO.DiameterKm.Known())
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestWriteFile_Formats(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	snap, err := WriteFile(ctx, filepath.Join(dir, "out.csv"), sample(t))
	require.NoError(t, err)
	assert.Nil(t, snap)
	b, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "datetime_utc,distance_au")

	_, err = WriteFile(ctx, filepath.Join(dir, "out.JSON"), sample(t))
	require.NoError(t, err)
	b, err = os.ReadFile(filepath.Join(dir, "out.JSON"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"datetime_utc"`)
}

func TestWriteFile_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	ctx := context.Background()

	snap, err := WriteFile(ctx, path, sample(t))
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.Approaches)
	assert.Equal(t, 2, snap.NEOs)

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	rows, err := s.SnapshotRows(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "433", rows[0].NEO.Designation)
	assert.Nil(t, rows[2].NEO)
}

func TestWriteFile_UnsupportedExtension(t *testing.T) {
	_, err := WriteFile(context.Background(), filepath.Join(t.TempDir(), "out.xml"), sample(t))
	assert.Error(t, err)
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/loxinchi/NEO-project/internal/model"
)

// SnapshotRows returns the approaches of one snapshot in export order.
func (s *SQLiteStore) SnapshotRows(ctx context.Context, id string) ([]Row, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exports WHERE id = ?`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("snapshot not found: %s", id)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.designation, a.datetime_utc, a.distance_au, a.velocity_km_s,
		       n.designation, n.name, n.diameter_km, n.potentially_hazardous
		FROM approaches a
		LEFT JOIN neos n ON a.linked = 1 AND n.export_id = a.export_id AND n.designation = a.designation
		WHERE a.export_id = ?
		ORDER BY a.seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRow(row scanner) (Row, error) {
	var r Row
	var neoDes, neoName sql.NullString
	var diameter sql.NullFloat64
	var hazardous sql.NullBool

	err := row.Scan(
		&r.Designation, &r.Approach.DatetimeUTC, &r.Approach.DistanceAU, &r.Approach.VelocityKmS,
		&neoDes, &neoName, &diameter, &hazardous,
	)
	if err != nil {
		return r, err
	}

	if neoDes.Valid {
		n := model.SerializedNEO{
			Designation:          neoDes.String,
			Name:                 neoName.String,
			DiameterKm:           model.Kilometers(math.NaN()),
			PotentiallyHazardous: hazardous.Bool,
		}
		if diameter.Valid {
			n.DiameterKm = model.Kilometers(diameter.Float64)
		}
		r.NEO = &n
	}
	return r, nil
}

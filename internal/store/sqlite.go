package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/loxinchi/NEO-project/internal/model"
)

// timeLayout has a fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Ensure SQLiteStore implements the interface.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exports (
		id             TEXT PRIMARY KEY,
		created_at     TEXT NOT NULL,
		approach_count INTEGER NOT NULL,
		neo_count      INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_exports_created ON exports(created_at DESC);

	CREATE TABLE IF NOT EXISTS neos (
		export_id             TEXT NOT NULL REFERENCES exports(id),
		designation           TEXT NOT NULL,
		name                  TEXT NOT NULL DEFAULT '',
		diameter_km           REAL,
		potentially_hazardous INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (export_id, designation)
	);

	CREATE TABLE IF NOT EXISTS approaches (
		export_id     TEXT NOT NULL REFERENCES exports(id),
		seq           INTEGER NOT NULL,
		designation   TEXT NOT NULL DEFAULT '',
		linked        INTEGER NOT NULL DEFAULT 0,
		datetime_utc  TEXT NOT NULL,
		distance_au   REAL NOT NULL,
		velocity_km_s REAL NOT NULL,
		PRIMARY KEY (export_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_approaches_designation ON approaches(export_id, designation);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, approaches []*model.CloseApproach) (*Snapshot, error) {
	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Counts are filled in once the NEOs are de-duplicated.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO exports (id, created_at, approach_count, neo_count) VALUES (?, ?, 0, 0)`,
		id, now.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert export: %w", err)
	}

	seen := make(map[string]bool)
	for i, ca := range approaches {
		neo := ca.NEO()
		if neo != nil && !seen[neo.Designation()] {
			seen[neo.Designation()] = true
			n := neo.Serialize()
			var diameter *float64
			if n.DiameterKm.Known() {
				d := float64(n.DiameterKm)
				diameter = &d
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO neos (export_id, designation, name, diameter_km, potentially_hazardous)
				 VALUES (?, ?, ?, ?, ?)`,
				id, n.Designation, n.Name, diameter, n.PotentiallyHazardous)
			if err != nil {
				return nil, fmt.Errorf("insert neo: %w", err)
			}
		}

		a := ca.Serialize()
		designation := ca.Designation()
		if neo != nil {
			designation = neo.Designation()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO approaches (export_id, seq, designation, linked, datetime_utc, distance_au, velocity_km_s)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, designation, neo != nil, a.DatetimeUTC, a.DistanceAU, a.VelocityKmS)
		if err != nil {
			return nil, fmt.Errorf("insert approach: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE exports SET approach_count = ?, neo_count = ? WHERE id = ?`,
		len(approaches), len(seen), id)
	if err != nil {
		return nil, fmt.Errorf("update export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Snapshot{
		ID:         id,
		CreatedAt:  now,
		Approaches: len(approaches),
		NEOs:       len(seen),
	}, nil
}

func (s *SQLiteStore) Snapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, approach_count, neo_count FROM exports ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var sn Snapshot
		var createdAt string
		if err := rows.Scan(&sn.ID, &createdAt, &sn.Approaches, &sn.NEOs); err != nil {
			return nil, err
		}
		sn.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		snaps = append(snaps, sn)
	}
	return snaps, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

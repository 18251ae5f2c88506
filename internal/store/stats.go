package store

import (
	"context"
	"os"
)

// Stats holds snapshot database statistics.
type Stats struct {
	DBPath          string `json:"db_path"`
	DBSizeBytes     int64  `json:"db_size_bytes"`
	Snapshots       int    `json:"snapshots"`
	TotalApproaches int    `json:"total_approaches"`
	DistinctNEOs    int    `json:"distinct_neos"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exports`).Scan(&st.Snapshots); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM approaches`).Scan(&st.TotalApproaches); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT designation) FROM neos`).Scan(&st.DistinctNEOs); err != nil {
		return st, err
	}
	return st, nil
}

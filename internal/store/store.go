// Package store writes query results to self-contained SQLite snapshot files.
package store

import (
	"context"
	"time"

	"github.com/loxinchi/NEO-project/internal/model"
)

// Snapshot describes one saved export.
type Snapshot struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Approaches int       `json:"approaches"`
	NEOs       int       `json:"neos"`
}

// Row is one close approach read back from a snapshot. NEO is nil for
// approaches that were never linked.
type Row struct {
	Designation string                   `json:"designation"`
	Approach    model.SerializedApproach `json:"approach"`
	NEO         *model.SerializedNEO     `json:"neo,omitempty"`
}

// Store defines the snapshot storage interface.
type Store interface {
	// SaveSnapshot writes the approaches and their NEOs as a new snapshot.
	SaveSnapshot(ctx context.Context, approaches []*model.CloseApproach) (*Snapshot, error)

	// Snapshots lists saved snapshots, newest first.
	Snapshots(ctx context.Context) ([]Snapshot, error)

	// SnapshotRows reads a snapshot's approaches back in export order.
	SnapshotRows(ctx context.Context, id string) ([]Row, error)

	// Close closes the store.
	Close() error
}

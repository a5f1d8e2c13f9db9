package store

import (
	"context"
	"errors"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// ErrNotFound is returned when a view, record batch, or snapshot does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for views, record batches, and
// transformation snapshots.
type Store interface {
	// Views
	SaveView(ctx context.Context, view *model.View) error // upsert by name
	GetView(ctx context.Context, name string) (*model.View, error)
	ListViews(ctx context.Context) ([]*model.View, error)
	DeleteView(ctx context.Context, name string) error

	// Record batches (one current batch per view)
	ReplaceRecords(ctx context.Context, batch *model.RecordBatch) error
	GetRecords(ctx context.Context, viewName string) (*model.RecordBatch, error)

	// Snapshots
	SaveSnapshot(ctx context.Context, snap *model.Snapshot) error
	GetSnapshot(ctx context.Context, id string) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context, viewName string, limit int) ([]*model.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

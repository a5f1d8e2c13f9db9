// Package client provides a transport-agnostic interface for the ganttview
// service and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// GanttClient is the interface that all gv CLI commands use to communicate
// with the ganttview server. It is implemented by HTTPClient (default) and
// can be backed by any transport.
type GanttClient interface {
	// Views
	SaveView(ctx context.Context, name string, req *SaveViewRequest) (*model.View, error)
	GetView(ctx context.Context, name string) (*model.View, error)
	ListViews(ctx context.Context) (*ListViewsResponse, error)
	DeleteView(ctx context.Context, name string) error

	// Records
	ReplaceRecords(ctx context.Context, viewName string, req *ReplaceRecordsRequest) (*ReplaceRecordsResponse, error)
	GetRecords(ctx context.Context, viewName string) (*model.RecordBatch, error)

	// Transformation
	Transform(ctx context.Context, req *TransformRequest) (*TransformResponse, error)
	GetGantt(ctx context.Context, viewName string, opts *GanttOptions) (*GanttResponse, error)

	// Snapshots
	GetSnapshot(ctx context.Context, id string) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context, viewName string, limit int) (*ListSnapshotsResponse, error)
	DeleteSnapshot(ctx context.Context, id string) error

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// SaveViewRequest holds parameters for creating or replacing a view.
type SaveViewRequest struct {
	Description string           `json:"description,omitempty"`
	Config      model.ViewConfig `json:"config"`
}

// ListViewsResponse is the response from listing views.
type ListViewsResponse struct {
	Views []*model.View `json:"views"`
	Total int           `json:"total"`
}

// ReplaceRecordsRequest holds a record batch upload.
type ReplaceRecordsRequest struct {
	Records    []model.RawRecord `json:"records"`
	UploadedBy string            `json:"uploaded_by,omitempty"`
}

// ReplaceRecordsResponse summarizes an accepted upload.
type ReplaceRecordsResponse struct {
	ViewName    string `json:"view_name"`
	RecordCount int    `json:"record_count"`
}

// TransformRequest holds parameters for an ad hoc transformation.
type TransformRequest struct {
	Records []model.RawRecord `json:"records"`
	Config  model.ViewConfig  `json:"config"`
}

// TransformResponse is the response from an ad hoc transformation.
type TransformResponse struct {
	Result *model.Result `json:"result"`
	Stats  *model.Stats  `json:"stats"`
}

// GanttOptions controls chart generation for a stored view.
type GanttOptions struct {
	// Snapshot persists the generated result server-side.
	Snapshot bool
	// Actor is recorded as the snapshot creator.
	Actor string
}

// GanttResponse is the response from generating a view's chart.
type GanttResponse struct {
	ViewName   string        `json:"view_name"`
	Result     *model.Result `json:"result"`
	Stats      *model.Stats  `json:"stats"`
	SnapshotID string        `json:"snapshot_id,omitempty"`
}

// ListSnapshotsResponse is the response from listing snapshots.
type ListSnapshotsResponse struct {
	Snapshots []*model.Snapshot `json:"snapshots"`
	Total     int               `json:"total"`
}

package events

import (
	"context"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// Event topic constants
const (
	TopicViewCreated = "gantt.view.created"
	TopicViewUpdated = "gantt.view.updated"
	TopicViewDeleted = "gantt.view.deleted"

	TopicRecordsReplaced = "gantt.records.replaced"

	TopicSnapshotCreated = "gantt.snapshot.created"
)

// Event types

type ViewCreated struct {
	View *model.View `json:"view"`
}

type ViewUpdated struct {
	View *model.View `json:"view"`
}

type ViewDeleted struct {
	ViewName string `json:"view_name"`
}

type RecordsReplaced struct {
	ViewName    string `json:"view_name"`
	RecordCount int    `json:"record_count"`
	UploadedBy  string `json:"uploaded_by,omitempty"`
}

type SnapshotCreated struct {
	SnapshotID   string `json:"snapshot_id"`
	ViewName     string `json:"view_name"`
	TaskCount    int    `json:"task_count"`
	LinkCount    int    `json:"link_count"`
	WarningCount int    `json:"warning_count"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

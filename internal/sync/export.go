package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alfredjeanlab/ganttview/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version   string    `json:"version"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	ViewCount int       `json:"view_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ExportJSONL writes all views, their record batches, and their snapshots
// from the store as JSONL to w. Views are written in name order.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	views, err := s.ListViews(ctx)
	if err != nil {
		return fmt.Errorf("list views: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	// Write header.
	if err := enc.Encode(header{
		Version:   "1",
		Type:      "header",
		Timestamp: time.Now().UTC(),
		ViewCount: len(views),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, v := range views {
		if err := enc.Encode(record{Type: "view", Data: v}); err != nil {
			return fmt.Errorf("encode view %s: %w", v.Name, err)
		}

		batch, err := s.GetRecords(ctx, v.Name)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// No upload yet.
		case err != nil:
			return fmt.Errorf("get records for %s: %w", v.Name, err)
		default:
			if err := enc.Encode(record{Type: "records", Data: batch}); err != nil {
				return fmt.Errorf("encode records for %s: %w", v.Name, err)
			}
		}

		snaps, err := s.ListSnapshots(ctx, v.Name, 0)
		if err != nil {
			return fmt.Errorf("list snapshots for %s: %w", v.Name, err)
		}
		for _, snap := range snaps {
			if err := enc.Encode(record{Type: "snapshot", Data: snap}); err != nil {
				return fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
			}
		}
	}

	return nil
}

package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/store"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanView(row rowScanner) (*model.View, error) {
	var (
		v   model.View
		cfg []byte
	)
	err := row.Scan(&v.Name, &v.Description, &cfg, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(cfg, &v.Config); err != nil {
		return nil, fmt.Errorf("unmarshal view config: %w", err)
	}
	return &v, nil
}

func scanSnapshot(row rowScanner) (*model.Snapshot, error) {
	var (
		snap   model.Snapshot
		result []byte
	)
	err := row.Scan(&snap.ID, &snap.ViewName, &result, &snap.RecordCount, &snap.CreatedAt, &snap.CreatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(result, &snap.Result); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot result: %w", err)
	}
	return &snap, nil
}

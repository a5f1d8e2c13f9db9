package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/store"
)

// viewColumns is the column list used for SELECT statements on the views table.
const viewColumns = `name, description, config, created_at, updated_at`

// snapshotColumns is the column list used for SELECT statements on the snapshots table.
const snapshotColumns = `id, view_name, result, record_count, created_at, created_by`

// --- Views ---

func (s *PostgresStore) SaveView(ctx context.Context, view *model.View) error {
	cfg, err := json.Marshal(view.Config)
	if err != nil {
		return fmt.Errorf("marshal view config: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO views (name, description, config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET description = EXCLUDED.description,
		    config = EXCLUDED.config,
		    updated_at = EXCLUDED.updated_at`,
		view.Name,
		view.Description,
		cfg,
		view.CreatedAt,
		view.UpdatedAt,
	)
	return err
}

func (s *PostgresStore) GetView(ctx context.Context, name string) (*model.View, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+viewColumns+` FROM views WHERE name = $1`, name)
	return scanView(row)
}

func (s *PostgresStore) ListViews(ctx context.Context) ([]*model.View, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+viewColumns+` FROM views ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*model.View
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (s *PostgresStore) DeleteView(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM views WHERE name = $1`, name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// --- Record batches ---

func (s *PostgresStore) ReplaceRecords(ctx context.Context, batch *model.RecordBatch) error {
	records, err := json.Marshal(batch.Records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO record_batches (view_name, records, uploaded_at, uploaded_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (view_name) DO UPDATE
		SET records = EXCLUDED.records,
		    uploaded_at = EXCLUDED.uploaded_at,
		    uploaded_by = EXCLUDED.uploaded_by`,
		batch.ViewName,
		records,
		batch.UploadedAt,
		batch.UploadedBy,
	)
	return err
}

func (s *PostgresStore) GetRecords(ctx context.Context, viewName string) (*model.RecordBatch, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT view_name, records, uploaded_at, uploaded_by
		FROM record_batches WHERE view_name = $1`, viewName)

	var (
		batch model.RecordBatch
		raw   []byte
	)
	if err := row.Scan(&batch.ViewName, &raw, &batch.UploadedAt, &batch.UploadedBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &batch.Records); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	return &batch, nil
}

// --- Snapshots ---

func (s *PostgresStore) SaveSnapshot(ctx context.Context, snap *model.Snapshot) error {
	result, err := json.Marshal(snap.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, view_name, result, record_count, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		snap.ID,
		snap.ViewName,
		result,
		snap.RecordCount,
		snap.CreatedAt,
		snap.CreatedBy,
	)
	return err
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, id string) (*model.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots WHERE id = $1`, id)
	return scanSnapshot(row)
}

func (s *PostgresStore) ListSnapshots(ctx context.Context, viewName string, limit int) ([]*model.Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+snapshotColumns+` FROM snapshots
		WHERE view_name = $1
		ORDER BY created_at DESC
		LIMIT $2`, viewName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*model.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (s *PostgresStore) DeleteSnapshot(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected maps a zero-row DELETE to store.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

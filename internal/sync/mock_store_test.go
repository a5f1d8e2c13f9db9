package sync

import (
	"context"
	"sort"

	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/store"
)

// mockStore is an in-memory store.Store for exercising export and scheduling.
type mockStore struct {
	views     map[string]*model.View
	batches   map[string]*model.RecordBatch
	snapshots map[string]*model.Snapshot
}

func newMockStore() *mockStore {
	return &mockStore{
		views:     make(map[string]*model.View),
		batches:   make(map[string]*model.RecordBatch),
		snapshots: make(map[string]*model.Snapshot),
	}
}

func (m *mockStore) SaveView(_ context.Context, view *model.View) error {
	m.views[view.Name] = view
	return nil
}

func (m *mockStore) GetView(_ context.Context, name string) (*model.View, error) {
	v, ok := m.views[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (m *mockStore) ListViews(_ context.Context) ([]*model.View, error) {
	var views []*model.View
	for _, v := range m.views {
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

func (m *mockStore) DeleteView(_ context.Context, name string) error {
	if _, ok := m.views[name]; !ok {
		return store.ErrNotFound
	}
	delete(m.views, name)
	return nil
}

func (m *mockStore) ReplaceRecords(_ context.Context, batch *model.RecordBatch) error {
	m.batches[batch.ViewName] = batch
	return nil
}

func (m *mockStore) GetRecords(_ context.Context, viewName string) (*model.RecordBatch, error) {
	b, ok := m.batches[viewName]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func (m *mockStore) SaveSnapshot(_ context.Context, snap *model.Snapshot) error {
	m.snapshots[snap.ID] = snap
	return nil
}

func (m *mockStore) GetSnapshot(_ context.Context, id string) (*model.Snapshot, error) {
	s, ok := m.snapshots[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (m *mockStore) ListSnapshots(_ context.Context, viewName string, limit int) ([]*model.Snapshot, error) {
	var snaps []*model.Snapshot
	for _, s := range m.snapshots {
		if s.ViewName == viewName {
			snaps = append(snaps, s)
		}
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].CreatedAt.After(snaps[j].CreatedAt) })
	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}
	return snaps, nil
}

func (m *mockStore) DeleteSnapshot(_ context.Context, id string) error {
	if _, ok := m.snapshots[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.snapshots, id)
	return nil
}

func (m *mockStore) Close() error { return nil }

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/alfredjeanlab/ganttview/internal/events"
	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/store"
)

type mockStore struct {
	views     map[string]*model.View
	batches   map[string]*model.RecordBatch
	snapshots map[string]*model.Snapshot

	// saveSnapshotErr, when non-nil, is returned by SaveSnapshot.
	saveSnapshotErr error
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
	delete(m.batches, name)
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
	if m.saveSnapshotErr != nil {
		return m.saveSnapshotErr
	}
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

func newTestServer(t *testing.T) (*GanttServer, *mockStore, http.Handler) {
	t.Helper()
	ms := newMockStore()
	srv := NewGanttServer(ms, &events.NoopPublisher{})
	return srv, ms, srv.NewHTTPHandler("")
}

func testViewConfig() model.ViewConfig {
	return model.ViewConfig{
		FieldMappings: model.FieldMappings{
			ID:     "file.path",
			Text:   "file.basename",
			Start:  "start",
			End:    "end",
			Parent: "parent",
		},
	}
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	_, _, h := newTestServer(t)

	w := doRequest(t, h, http.MethodGet, "/v1/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestHandleTransform(t *testing.T) {
	_, _, h := newTestServer(t)

	body := map[string]any{
		"records": []map[string]any{
			{"file.path": "a.md", "file.basename": "a", "start": "2024-01-01", "end": "2024-01-05"},
			{"file.path": "b.md", "file.basename": "b", "start": "2024-01-03", "end": "2024-01-08", "parent": "[[a]]"},
		},
		"config": testViewConfig(),
	}

	w := doRequest(t, h, http.MethodPost, "/v1/transform", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Result model.Result `json:"result"`
		Stats  model.Stats  `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Result.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(resp.Result.Tasks))
	}
	if resp.Result.Tasks[1].Parent != "a.md" {
		t.Errorf("expected parent a.md, got %q", resp.Result.Tasks[1].Parent)
	}
	if resp.Stats.TotalTasks != 2 {
		t.Errorf("expected total tasks 2, got %d", resp.Stats.TotalTasks)
	}
}

func TestHandleTransformInvalidConfig(t *testing.T) {
	_, _, h := newTestServer(t)

	body := map[string]any{
		"records": []map[string]any{},
		"config":  map[string]any{"field_mappings": map[string]any{}},
	}

	w := doRequest(t, h, http.MethodPost, "/v1/transform", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleSaveViewCreate(t *testing.T) {
	_, ms, h := newTestServer(t)

	body := saveViewInput{Description: "quarterly roadmap", Config: testViewConfig()}
	w := doRequest(t, h, http.MethodPut, "/v1/views/roadmap", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if _, ok := ms.views["roadmap"]; !ok {
		t.Fatal("view not persisted")
	}
}

func TestHandleSaveViewUpdatePreservesCreatedAt(t *testing.T) {
	_, ms, h := newTestServer(t)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms.views["roadmap"] = &model.View{Name: "roadmap", Config: testViewConfig(), CreatedAt: created}

	body := saveViewInput{Description: "updated", Config: testViewConfig()}
	w := doRequest(t, h, http.MethodPut, "/v1/views/roadmap", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got := ms.views["roadmap"]
	if !got.CreatedAt.Equal(created) {
		t.Errorf("expected created_at preserved, got %v", got.CreatedAt)
	}
	if got.Description != "updated" {
		t.Errorf("expected description updated, got %q", got.Description)
	}
}

func TestHandleSaveViewInvalidConfig(t *testing.T) {
	_, _, h := newTestServer(t)

	body := map[string]any{"config": map[string]any{"field_mappings": map[string]any{"id": "file.path"}}}
	w := doRequest(t, h, http.MethodPut, "/v1/views/bad", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleGetViewNotFound(t *testing.T) {
	_, _, h := newTestServer(t)

	w := doRequest(t, h, http.MethodGet, "/v1/views/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandleListViewsEmpty(t *testing.T) {
	_, _, h := newTestServer(t)

	w := doRequest(t, h, http.MethodGet, "/v1/views", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// views must be [] rather than null.
	var resp struct {
		Views []*model.View `json:"views"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Views == nil {
		t.Error("expected empty array, got null")
	}
}

func TestHandleDeleteView(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.views["roadmap"] = &model.View{Name: "roadmap", Config: testViewConfig()}

	w := doRequest(t, h, http.MethodDelete, "/v1/views/roadmap", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if _, ok := ms.views["roadmap"]; ok {
		t.Error("view still present after delete")
	}

	w = doRequest(t, h, http.MethodDelete, "/v1/views/roadmap", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestHandleReplaceRecords(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.views["roadmap"] = &model.View{Name: "roadmap", Config: testViewConfig()}

	body := replaceRecordsInput{
		Records: []model.RawRecord{
			{"file.path": "a.md", "file.basename": "a"},
		},
		UploadedBy: "ci",
	}
	w := doRequest(t, h, http.MethodPut, "/v1/views/roadmap/records", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	batch := ms.batches["roadmap"]
	if batch == nil || len(batch.Records) != 1 {
		t.Fatalf("batch not persisted: %+v", batch)
	}
	if batch.UploadedBy != "ci" {
		t.Errorf("expected uploaded_by ci, got %q", batch.UploadedBy)
	}
}

func TestHandleReplaceRecordsViewNotFound(t *testing.T) {
	_, _, h := newTestServer(t)

	body := replaceRecordsInput{Records: []model.RawRecord{}}
	w := doRequest(t, h, http.MethodPut, "/v1/views/missing/records", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandleGetGantt(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.views["roadmap"] = &model.View{Name: "roadmap", Config: testViewConfig()}
	ms.batches["roadmap"] = &model.RecordBatch{
		ViewName: "roadmap",
		Records: []model.RawRecord{
			{"file.path": "a.md", "file.basename": "a", "start": "2024-01-01", "end": "2024-01-05"},
		},
	}

	w := doRequest(t, h, http.MethodGet, "/v1/views/roadmap/gantt", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ViewName string       `json:"view_name"`
		Result   model.Result `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Result.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(resp.Result.Tasks))
	}
	if len(ms.snapshots) != 0 {
		t.Errorf("expected no snapshot without ?snapshot=true, got %d", len(ms.snapshots))
	}
}

func TestHandleGetGanttSnapshot(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.views["roadmap"] = &model.View{Name: "roadmap", Config: testViewConfig()}
	ms.batches["roadmap"] = &model.RecordBatch{
		ViewName: "roadmap",
		Records: []model.RawRecord{
			{"file.path": "a.md", "file.basename": "a", "start": "2024-01-01", "end": "2024-01-05"},
		},
	}

	w := doRequest(t, h, http.MethodGet, "/v1/views/roadmap/gantt?snapshot=true&actor=ci", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		SnapshotID string `json:"snapshot_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SnapshotID == "" {
		t.Fatal("expected snapshot_id in response")
	}

	snap := ms.snapshots[resp.SnapshotID]
	if snap == nil {
		t.Fatal("snapshot not persisted")
	}
	if snap.CreatedBy != "ci" {
		t.Errorf("expected created_by ci, got %q", snap.CreatedBy)
	}
	if snap.RecordCount != 1 {
		t.Errorf("expected record count 1, got %d", snap.RecordCount)
	}
}

func TestHandleGetGanttNoRecords(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.views["roadmap"] = &model.View{Name: "roadmap", Config: testViewConfig()}

	w := doRequest(t, h, http.MethodGet, "/v1/views/roadmap/gantt", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandleGetSnapshot(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.snapshots["gv-abc"] = &model.Snapshot{
		ID:       "gv-abc",
		ViewName: "roadmap",
		Result:   &model.Result{Tasks: []*model.Task{}, Links: []*model.Link{}, Warnings: []string{}},
	}

	w := doRequest(t, h, http.MethodGet, "/v1/snapshots/gv-abc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(t, h, http.MethodGet, "/v1/snapshots/gv-missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandleListSnapshotsNewestFirst(t *testing.T) {
	_, ms, h := newTestServer(t)

	now := time.Now()
	ms.snapshots["gv-old"] = &model.Snapshot{ID: "gv-old", ViewName: "roadmap", CreatedAt: now.Add(-time.Hour)}
	ms.snapshots["gv-new"] = &model.Snapshot{ID: "gv-new", ViewName: "roadmap", CreatedAt: now}
	ms.snapshots["gv-other"] = &model.Snapshot{ID: "gv-other", ViewName: "other", CreatedAt: now}

	w := doRequest(t, h, http.MethodGet, "/v1/views/roadmap/snapshots", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Snapshots []*model.Snapshot `json:"snapshots"`
		Total     int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 snapshots, got %d", resp.Total)
	}
	if resp.Snapshots[0].ID != "gv-new" {
		t.Errorf("expected newest first, got %q", resp.Snapshots[0].ID)
	}
}

func TestHandleDeleteSnapshot(t *testing.T) {
	_, ms, h := newTestServer(t)
	ms.snapshots["gv-abc"] = &model.Snapshot{ID: "gv-abc", ViewName: "roadmap"}

	w := doRequest(t, h, http.MethodDelete, "/v1/snapshots/gv-abc", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if _, ok := ms.snapshots["gv-abc"]; ok {
		t.Error("snapshot still present after delete")
	}
}

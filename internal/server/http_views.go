package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alfredjeanlab/ganttview/internal/events"
	"github.com/alfredjeanlab/ganttview/internal/gantt"
	"github.com/alfredjeanlab/ganttview/internal/idgen"
	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/store"
)

// transformInput is the request body for POST /v1/transform.
type transformInput struct {
	Records []model.RawRecord `json:"records"`
	Config  model.ViewConfig  `json:"config"`
}

// handleTransform handles POST /v1/transform. It runs the pipeline on the
// supplied records without touching the store.
func (s *GanttServer) handleTransform(w http.ResponseWriter, r *http.Request) {
	var in transformInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := model.ValidateViewConfig(&in.Config); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := gantt.Transform(in.Records, &in.Config)
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"stats":  model.ComputeStats(result),
	})
}

// saveViewInput is the request body for PUT /v1/views/{name}.
type saveViewInput struct {
	Description string           `json:"description"`
	Config      model.ViewConfig `json:"config"`
}

// handleSaveView handles PUT /v1/views/{name}. Creates the view if it does
// not exist, otherwise replaces its description and config.
func (s *GanttServer) handleSaveView(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	var in saveViewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := model.ValidateViewConfig(&in.Config); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	view := &model.View{
		Name:        name,
		Description: in.Description,
		Config:      in.Config,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created := true
	existing, err := s.store.GetView(r.Context(), name)
	switch {
	case err == nil:
		created = false
		view.CreatedAt = existing.CreatedAt
	case errors.Is(err, store.ErrNotFound):
		// first save
	default:
		writeError(w, http.StatusInternalServerError, "failed to load view")
		return
	}

	if err := s.store.SaveView(r.Context(), view); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save view")
		return
	}

	if created {
		s.publish(r.Context(), events.TopicViewCreated, events.ViewCreated{View: view})
		writeJSON(w, http.StatusCreated, view)
		return
	}
	s.publish(r.Context(), events.TopicViewUpdated, events.ViewUpdated{View: view})
	writeJSON(w, http.StatusOK, view)
}

// handleGetView handles GET /v1/views/{name}.
func (s *GanttServer) handleGetView(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	view, err := s.store.GetView(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "view not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get view")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleListViews handles GET /v1/views.
func (s *GanttServer) handleListViews(w http.ResponseWriter, r *http.Request) {
	views, err := s.store.ListViews(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list views")
		return
	}

	// Ensure views is never null in JSON output.
	if views == nil {
		views = []*model.View{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"views": views,
		"total": len(views),
	})
}

// handleDeleteView handles DELETE /v1/views/{name}.
func (s *GanttServer) handleDeleteView(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := s.store.DeleteView(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "view not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete view")
		return
	}

	s.publish(r.Context(), events.TopicViewDeleted, events.ViewDeleted{ViewName: name})

	w.WriteHeader(http.StatusNoContent)
}

// replaceRecordsInput is the request body for PUT /v1/views/{name}/records.
type replaceRecordsInput struct {
	Records    []model.RawRecord `json:"records"`
	UploadedBy string            `json:"uploaded_by"`
}

// handleReplaceRecords handles PUT /v1/views/{name}/records. The upload
// replaces the view's record batch wholesale.
func (s *GanttServer) handleReplaceRecords(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if _, err := s.store.GetView(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "view not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load view")
		return
	}

	var in replaceRecordsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.Records == nil {
		writeError(w, http.StatusBadRequest, "records is required")
		return
	}

	batch := &model.RecordBatch{
		ViewName:   name,
		Records:    in.Records,
		UploadedAt: time.Now().UTC(),
		UploadedBy: in.UploadedBy,
	}

	if err := s.store.ReplaceRecords(r.Context(), batch); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to replace records")
		return
	}

	s.publish(r.Context(), events.TopicRecordsReplaced, events.RecordsReplaced{
		ViewName:    name,
		RecordCount: len(in.Records),
		UploadedBy:  in.UploadedBy,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"view_name":    name,
		"record_count": len(in.Records),
		"uploaded_at":  batch.UploadedAt,
	})
}

// handleGetRecords handles GET /v1/views/{name}/records.
func (s *GanttServer) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	batch, err := s.store.GetRecords(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no records uploaded for view")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get records")
		return
	}

	writeJSON(w, http.StatusOK, batch)
}

// handleGetGantt handles GET /v1/views/{name}/gantt. It transforms the
// view's current record batch through its config. With ?snapshot=true the
// result is also persisted as a snapshot.
func (s *GanttServer) handleGetGantt(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	view, err := s.store.GetView(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "view not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get view")
		return
	}

	batch, err := s.store.GetRecords(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no records uploaded for view")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get records")
		return
	}

	result := gantt.Transform(batch.Records, &view.Config)

	resp := map[string]any{
		"view_name": name,
		"result":    result,
		"stats":     model.ComputeStats(result),
	}

	if r.URL.Query().Get("snapshot") == "true" {
		id, err := idgen.NewSnapshotID()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to generate snapshot id")
			return
		}
		snap := &model.Snapshot{
			ID:          id,
			ViewName:    name,
			Result:      result,
			RecordCount: len(batch.Records),
			CreatedAt:   time.Now().UTC(),
			CreatedBy:   r.URL.Query().Get("actor"),
		}
		if err := s.store.SaveSnapshot(r.Context(), snap); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save snapshot")
			return
		}
		s.publish(r.Context(), events.TopicSnapshotCreated, events.SnapshotCreated{
			SnapshotID:   snap.ID,
			ViewName:     name,
			TaskCount:    len(result.Tasks),
			LinkCount:    len(result.Links),
			WarningCount: len(result.Warnings),
		})
		resp["snapshot_id"] = snap.ID
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleListSnapshots handles GET /v1/views/{name}/snapshots.
func (s *GanttServer) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	snaps, err := s.store.ListSnapshots(r.Context(), name, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}

	if snaps == nil {
		snaps = []*model.Snapshot{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"snapshots": snaps,
		"total":     len(snaps),
	})
}

// handleGetSnapshot handles GET /v1/snapshots/{id}.
func (s *GanttServer) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	snap, err := s.store.GetSnapshot(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get snapshot")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// handleDeleteSnapshot handles DELETE /v1/snapshots/{id}.
func (s *GanttServer) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.store.DeleteSnapshot(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "snapshot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete snapshot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

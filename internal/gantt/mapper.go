package gantt

import (
	"fmt"
	"strings"
	"time"

	"github.com/alfredjeanlab/ganttview/internal/dates"
	"github.com/alfredjeanlab/ganttview/internal/model"
)

// mapRecord applies field mappings, date policy, progress normalization, and
// parent resolution to one raw record. It returns the mapped task (nil when
// the record is skipped) and any warnings generated along the way. It is a
// pure function of its inputs: the record is never mutated.
func mapRecord(rec model.RawRecord, cfg *model.ViewConfig, ix *refIndex, today time.Time) (*model.Task, []string) {
	m := cfg.FieldMappings

	id, ok := ResolveString(rec, m.ID)
	if !ok {
		return nil, []string{fmt.Sprintf("skipped record: missing required id (mapping %q)", m.ID)}
	}
	text, ok := ResolveString(rec, m.Text)
	if !ok {
		return nil, []string{fmt.Sprintf("skipped record %q: missing required text (mapping %q)", id, m.Text)}
	}

	task := &model.Task{
		ID:     id,
		Text:   text,
		NoteID: id,
		Kind:   model.KindPrimary,
	}
	var warnings []string

	start, hasStart := resolveDate(rec, m.Start)
	end, hasEnd := resolveDate(rec, m.End)
	start, end, hasStart, hasEnd, dateWarnings := applyDatePolicy(
		id, cfg, start, end, hasStart, hasEnd, recordDuration(rec, m.Duration), today)
	warnings = append(warnings, dateWarnings...)
	if hasStart {
		task.StartDate = dates.Format(start)
	}
	if hasEnd {
		task.EndDate = dates.Format(end)
	}

	if p, ok := resolveProgress(rec, m.Progress); ok {
		task.Progress = &p
	}

	task.Parent = resolveParent(rec, m, ix, id)

	// A parents mapping with more than one entry defers everything past the
	// first to the expansion step; the raw list rides along unresolved.
	if refs := parentList(rec, m.Parents); len(refs) > 1 {
		task.SetRawParents(refs)
	}

	if t, ok := ResolveString(rec, m.Type); ok {
		tt := model.TaskType(strings.ToLower(t))
		if tt.IsValid() {
			task.Type = tt
		}
	}

	return task, warnings
}

// resolveDate resolves a mapped field through the date normalizer.
func resolveDate(rec model.RawRecord, key string) (time.Time, bool) {
	v, ok := Resolve(rec, key)
	if !ok {
		return time.Time{}, false
	}
	return dates.Parse(v)
}

// recordDuration reads a per-record duration override in days. Zero and
// negative values are ignored.
func recordDuration(rec model.RawRecord, key string) int {
	v, ok := Resolve(rec, key)
	if !ok {
		return 0
	}
	n, ok := toFloat(v)
	if !ok || n <= 0 {
		return 0
	}
	return int(n)
}

// applyDatePolicy fills missing dates according to the view's missing-date
// behaviors. Inference derives the absent date from the present one plus the
// duration (the record's own duration field when mapped, the view default
// otherwise). When both dates are missing and either side infers, the task
// is anchored at today. Non-infer policies leave dates absent for the render
// layer to decide, optionally with a warning.
func applyDatePolicy(id string, cfg *model.ViewConfig, start, end time.Time, hasStart, hasEnd bool, recDuration int, today time.Time) (time.Time, time.Time, bool, bool, []string) {
	duration := cfg.Duration()
	if recDuration > 0 {
		duration = recDuration
	}

	inferStart := cfg.MissingStartBehavior == model.BehaviorInfer
	inferEnd := cfg.MissingEndBehavior == model.BehaviorInfer

	switch {
	case hasStart && !hasEnd && inferEnd:
		end = dates.AddDays(start, duration)
		hasEnd = true
	case hasEnd && !hasStart && inferStart:
		start = dates.AddDays(end, -duration)
		hasStart = true
	case !hasStart && !hasEnd && (inferStart || inferEnd):
		start = today
		end = dates.AddDays(start, duration)
		hasStart, hasEnd = true, true
	}

	var warnings []string
	if cfg.ShowMissingDates {
		if !hasStart {
			warnings = append(warnings, fmt.Sprintf("task %q has no start date", id))
		}
		if !hasEnd {
			warnings = append(warnings, fmt.Sprintf("task %q has no end date", id))
		}
	}
	return start, end, hasStart, hasEnd, warnings
}

// resolveProgress normalizes a mapped progress value into [0, 1]. Values
// above 1 are treated as percentages; already-fractional values pass through
// unscaled. Non-numeric inputs are ignored.
func resolveProgress(rec model.RawRecord, key string) (float64, bool) {
	v, ok := Resolve(rec, key)
	if !ok {
		return 0, false
	}
	p, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	if p > 1 {
		p /= 100
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p, true
}

// resolveParent resolves the task's parent, preferring the singular parent
// mapping and falling back to the first entry of the parents mapping. The
// parent is assigned only when resolution succeeds; dangling and
// self-referential candidates leave it empty.
func resolveParent(rec model.RawRecord, m model.FieldMappings, ix *refIndex, selfID string) string {
	if ref, ok := Resolve(rec, m.Parent); ok {
		if id, ok := ix.resolveRef(ref, selfID); ok {
			return id
		}
	}
	if refs := parentList(rec, m.Parents); len(refs) > 0 {
		if id, ok := ix.resolveRef(refs[0], selfID); ok {
			return id
		}
	}
	return ""
}

// parentList reads the parents mapping as a list of raw references. A single
// non-array value is treated as a one-element list.
func parentList(rec model.RawRecord, key string) []any {
	v, ok := Resolve(rec, key)
	if !ok {
		return nil
	}
	if arr, ok := v.([]any); ok {
		return arr
	}
	return []any{v}
}

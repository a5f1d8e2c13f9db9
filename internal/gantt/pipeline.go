package gantt

import (
	"time"

	"github.com/alfredjeanlab/ganttview/internal/dates"
	"github.com/alfredjeanlab/ganttview/internal/model"
)

// Option configures a transformation run.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the wall clock used when both dates are missing and
// inference is active. Tests pin it for deterministic output.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Transform runs the full pipeline over a batch of raw records: seed the
// reference index, map every record, expand multi-parent tasks, and derive
// dependency links. The config is assumed valid; callers run
// model.ValidateViewConfig once at config-load time, not per batch.
//
// One record failing never aborts the batch: unprocessable records are
// skipped with a warning and processing continues. Tasks preserve input
// record order (virtual duplicates immediately follow their primary) and
// warnings preserve generation order. The function is pure apart from the
// clock, which is read once per call so a single run is internally
// consistent; it holds no shared state and is safe to invoke concurrently.
func Transform(records []model.RawRecord, cfg *model.ViewConfig, opts ...Option) *model.Result {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	today := dates.Truncate(o.now())

	ix := buildIndex(records, cfg.FieldMappings)

	tasks := make([]*model.Task, 0, len(records))
	warnings := []string{}
	for _, rec := range records {
		task, w := mapRecord(rec, cfg, ix, today)
		warnings = append(warnings, w...)
		if task != nil {
			tasks = append(tasks, task)
		}
	}

	return &model.Result{
		Tasks:    expand(tasks, ix),
		Links:    deriveLinks(records, cfg.FieldMappings, ix),
		Warnings: warnings,
	}
}

package model

import "time"

// ViewMode selects the chart's time scale.
type ViewMode string

const (
	ModeDay   ViewMode = "Day"
	ModeWeek  ViewMode = "Week"
	ModeMonth ViewMode = "Month"
)

// String returns the string representation of the view mode.
func (m ViewMode) String() string {
	return string(m)
}

// IsValid checks whether the view mode is a known value.
func (m ViewMode) IsValid() bool {
	switch m {
	case ModeDay, ModeWeek, ModeMonth:
		return true
	}
	return false
}

// MissingDateBehavior controls what happens when a mapped date is absent.
type MissingDateBehavior string

const (
	BehaviorInfer MissingDateBehavior = "infer"
	BehaviorShow  MissingDateBehavior = "show"
	BehaviorHide  MissingDateBehavior = "hide"
)

// String returns the string representation of the behavior.
func (b MissingDateBehavior) String() string {
	return string(b)
}

// IsValid checks whether the behavior is a known value.
func (b MissingDateBehavior) IsValid() bool {
	switch b {
	case BehaviorInfer, BehaviorShow, BehaviorHide:
		return true
	}
	return false
}

// FieldMappings associates logical task roles with record key names.
// ID and Text are mandatory; everything else is opt-in. An empty mapping
// means the role is unmapped and the field is never read from the record.
type FieldMappings struct {
	ID         string `json:"id" toml:"id"`
	Text       string `json:"text" toml:"text"`
	Start      string `json:"start,omitempty" toml:"start,omitempty"`
	End        string `json:"end,omitempty" toml:"end,omitempty"`
	Progress   string `json:"progress,omitempty" toml:"progress,omitempty"`
	Parent     string `json:"parent,omitempty" toml:"parent,omitempty"`
	Parents    string `json:"parents,omitempty" toml:"parents,omitempty"`
	Dependency string `json:"dependency,omitempty" toml:"dependency,omitempty"`
	Duration   string `json:"duration,omitempty" toml:"duration,omitempty"`
	Type       string `json:"type,omitempty" toml:"type,omitempty"`
}

// DefaultDuration is the fallback task length, in days, used by date
// inference when a view does not configure one.
const DefaultDuration = 1

// ViewConfig is the full user-supplied configuration for one gantt view.
type ViewConfig struct {
	FieldMappings FieldMappings `json:"field_mappings" toml:"field_mappings"`

	ViewMode ViewMode `json:"view_mode,omitempty" toml:"view_mode,omitempty"`

	// Missing-date policy, independently for start and end. Empty means
	// "show" (leave the date absent, no inference).
	MissingStartBehavior MissingDateBehavior `json:"missing_start_behavior,omitempty" toml:"missing_start_behavior,omitempty"`
	MissingEndBehavior   MissingDateBehavior `json:"missing_end_behavior,omitempty" toml:"missing_end_behavior,omitempty"`

	// DefaultDuration is the task length, in days, used when inferring a
	// missing date from the present one. Zero means unset; the pipeline
	// falls back to the package default.
	DefaultDuration int `json:"default_duration,omitempty" toml:"default_duration,omitempty"`

	// ShowMissingDates surfaces a warning for each task left without a date
	// under a non-infer policy.
	ShowMissingDates bool `json:"show_missing_dates,omitempty" toml:"show_missing_dates,omitempty"`
}

// Duration returns the configured default duration, or the package default
// when unset.
func (c *ViewConfig) Duration() int {
	if c.DefaultDuration > 0 {
		return c.DefaultDuration
	}
	return DefaultDuration
}

// View is a named, persisted gantt view definition.
type View struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Config      ViewConfig `json:"config"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RecordBatch is the most recent record upload for a view.
type RecordBatch struct {
	ViewName   string      `json:"view_name"`
	Records    []RawRecord `json:"records"`
	UploadedAt time.Time   `json:"uploaded_at"`
	UploadedBy string      `json:"uploaded_by,omitempty"`
}

// Snapshot is a persisted transformation result.
type Snapshot struct {
	ID          string    `json:"id"`
	ViewName    string    `json:"view_name"`
	Result      *Result   `json:"result"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

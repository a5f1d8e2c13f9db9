package model

// TaskKind distinguishes primary tasks from virtual per-parent duplicates.
type TaskKind string

const (
	KindPrimary TaskKind = "primary"
	KindVirtual TaskKind = "virtual"
)

// String returns the string representation of the kind.
func (k TaskKind) String() string {
	return string(k)
}

// IsValid checks whether the kind is a known value.
func (k TaskKind) IsValid() bool {
	switch k {
	case KindPrimary, KindVirtual:
		return true
	}
	return false
}

// TaskType categorizes how a task row is rendered.
type TaskType string

const (
	TypeTask      TaskType = "task"
	TypeSummary   TaskType = "summary"
	TypeMilestone TaskType = "milestone"
)

// String returns the string representation of the task type.
func (t TaskType) String() string {
	return string(t)
}

// IsValid checks whether the task type is a known value.
func (t TaskType) IsValid() bool {
	switch t {
	case TypeTask, TypeSummary, TypeMilestone:
		return true
	}
	return false
}

// Task is the pipeline's normalized output unit, ready for rendering.
// Dates are canonical "YYYY-MM-DD" strings derived from UTC components, or
// empty when absent. Parent, when set, always references another task in the
// same batch and is never the task's own id.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Progress  *float64 `json:"progress,omitempty"` // fraction in [0, 1]
	Parent    string   `json:"parent,omitempty"`
	Type      TaskType `json:"type,omitempty"`

	// NoteID ties a task back to its originating record. Virtual duplicates
	// share the NoteID of their primary so consumers can always trace a row
	// to its single source note.
	NoteID string `json:"note_id"`

	// Kind and Sequence identify virtual duplicates explicitly instead of
	// requiring consumers to parse the "::v{n}" id suffix. Sequence is the
	// 1-based index of the duplicate's parent in the raw parents list; it is
	// 0 for primary tasks.
	Kind     TaskKind `json:"kind"`
	Sequence int      `json:"sequence,omitempty"`

	// rawParents carries the unresolved multi-parent list from mapping to
	// expansion. Only populated when a parents mapping yields more than one
	// entry; never serialized.
	rawParents []any
}

// SetRawParents attaches the unresolved multi-parent list for later expansion.
func (t *Task) SetRawParents(refs []any) {
	t.rawParents = refs
}

// RawParents returns the attached multi-parent list, or nil.
func (t *Task) RawParents() []any {
	return t.rawParents
}

// Clone returns a copy of the task without the raw parent attachment.
func (t *Task) Clone() *Task {
	out := *t
	out.rawParents = nil
	if t.Progress != nil {
		p := *t.Progress
		out.Progress = &p
	}
	return &out
}

// LinkType categorizes a dependency link between two tasks.
// "0" is the renderer's finish-to-start tag.
type LinkType string

const LinkFinishToStart LinkType = "0"

// Link is a directional dependency between two tasks: Target cannot start
// until Source finishes.
type Link struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   LinkType `json:"type"`
}

// Result is the full output of one transformation run. Tasks preserve input
// record order, with virtual duplicates immediately following their primary.
// Warnings preserve generation order.
type Result struct {
	Tasks    []*Task  `json:"tasks"`
	Links    []*Link  `json:"links"`
	Warnings []string `json:"warnings"`
}

// Stats holds aggregate counts for a transformation result.
type Stats struct {
	TotalTasks   int `json:"total_tasks"`
	PrimaryTasks int `json:"primary_tasks"`
	VirtualTasks int `json:"virtual_tasks"`
	TotalLinks   int `json:"total_links"`
	Warnings     int `json:"warnings"`
}

// ComputeStats derives aggregate counts from a result.
func ComputeStats(r *Result) *Stats {
	s := &Stats{
		TotalTasks: len(r.Tasks),
		TotalLinks: len(r.Links),
		Warnings:   len(r.Warnings),
	}
	for _, t := range r.Tasks {
		if t.Kind == KindVirtual {
			s.VirtualTasks++
		} else {
			s.PrimaryTasks++
		}
	}
	return s
}

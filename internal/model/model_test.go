package model

import "testing"

func TestViewMode_IsValid(t *testing.T) {
	valid := []ViewMode{ModeDay, ModeWeek, ModeMonth}
	for _, m := range valid {
		if !m.IsValid() {
			t.Errorf("ViewMode(%q).IsValid() = false, want true", m)
		}
	}
	invalid := []ViewMode{"", "day", "Year", "Quarter"}
	for _, m := range invalid {
		if m.IsValid() {
			t.Errorf("ViewMode(%q).IsValid() = true, want false", m)
		}
	}
}

func TestMissingDateBehavior_IsValid(t *testing.T) {
	valid := []MissingDateBehavior{BehaviorInfer, BehaviorShow, BehaviorHide}
	for _, b := range valid {
		if !b.IsValid() {
			t.Errorf("MissingDateBehavior(%q).IsValid() = false, want true", b)
		}
	}
	invalid := []MissingDateBehavior{"", "Infer", "drop"}
	for _, b := range invalid {
		if b.IsValid() {
			t.Errorf("MissingDateBehavior(%q).IsValid() = true, want false", b)
		}
	}
}

func TestTaskKind_IsValid(t *testing.T) {
	if !KindPrimary.IsValid() || !KindVirtual.IsValid() {
		t.Error("known task kinds reported invalid")
	}
	if TaskKind("ghost").IsValid() {
		t.Error(`TaskKind("ghost").IsValid() = true, want false`)
	}
}

func TestViewConfig_Duration(t *testing.T) {
	cfg := &ViewConfig{}
	if got := cfg.Duration(); got != DefaultDuration {
		t.Errorf("Duration() with unset value = %d, want %d", got, DefaultDuration)
	}
	cfg.DefaultDuration = 14
	if got := cfg.Duration(); got != 14 {
		t.Errorf("Duration() = %d, want 14", got)
	}
}

func TestTask_Clone(t *testing.T) {
	p := 0.5
	orig := &Task{
		ID:       "a.md",
		Text:     "Task A",
		Progress: &p,
		Kind:     KindPrimary,
	}
	orig.SetRawParents([]any{"x", "y"})

	clone := orig.Clone()
	if clone.RawParents() != nil {
		t.Error("Clone() kept the raw parent attachment")
	}
	*clone.Progress = 0.9
	if *orig.Progress != 0.5 {
		t.Error("Clone() shares progress storage with the original")
	}
}

func TestComputeStats(t *testing.T) {
	res := &Result{
		Tasks: []*Task{
			{ID: "a", Kind: KindPrimary},
			{ID: "b", Kind: KindPrimary},
			{ID: "b::v1", Kind: KindVirtual, Sequence: 1},
		},
		Links:    []*Link{{ID: "1", Source: "a", Target: "b", Type: LinkFinishToStart}},
		Warnings: []string{"one", "two"},
	}

	s := ComputeStats(res)
	if s.TotalTasks != 3 || s.PrimaryTasks != 2 || s.VirtualTasks != 1 {
		t.Errorf("task counts = %d/%d/%d, want 3/2/1", s.TotalTasks, s.PrimaryTasks, s.VirtualTasks)
	}
	if s.TotalLinks != 1 || s.Warnings != 2 {
		t.Errorf("links/warnings = %d/%d, want 1/2", s.TotalLinks, s.Warnings)
	}
}

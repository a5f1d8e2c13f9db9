package gantt

import (
	"testing"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

func TestResolve_PlainKey(t *testing.T) {
	rec := model.RawRecord{"title": "Build the thing"}
	v, ok := Resolve(rec, "title")
	if !ok || v != "Build the thing" {
		t.Errorf("Resolve(title) = (%v, %v), want (Build the thing, true)", v, ok)
	}
}

func TestResolve_LiteralDottedKeyWins(t *testing.T) {
	// The data source flattens file metadata as literal dotted keys; those
	// must match before any nested traversal.
	rec := model.RawRecord{
		"file.path": "notes/a.md",
		"file":      map[string]any{"path": "nested/b.md"},
	}
	v, ok := Resolve(rec, "file.path")
	if !ok || v != "notes/a.md" {
		t.Errorf("Resolve(file.path) = (%v, %v), want literal key value", v, ok)
	}
}

func TestResolve_NestedTraversal(t *testing.T) {
	rec := model.RawRecord{
		"file": map[string]any{
			"meta": map[string]any{"folder": "projects"},
		},
	}
	v, ok := Resolve(rec, "file.meta.folder")
	if !ok || v != "projects" {
		t.Errorf("Resolve(file.meta.folder) = (%v, %v), want (projects, true)", v, ok)
	}
}

func TestResolve_Absent(t *testing.T) {
	rec := model.RawRecord{
		"title": "x",
		"nope":  nil,
		"file":  map[string]any{"path": "a.md"},
		"num":   3.0,
	}
	cases := []string{
		"",            // unmapped fields are opt-in, never inferred
		"missing",     // no such key
		"nope",        // nil value
		"file.name",   // missing nested segment
		"title.sub",   // non-traversable intermediate
		"num.x",       // scalar is not traversable
		"file.path.x", // traversal past a leaf
	}
	for _, key := range cases {
		if v, ok := Resolve(rec, key); ok {
			t.Errorf("Resolve(%q) = (%v, true), want absent", key, v)
		}
	}
}

func TestResolveString(t *testing.T) {
	rec := model.RawRecord{
		"name":  "  padded  ",
		"num":   42.0,
		"blank": "   ",
		"obj":   map[string]any{"x": 1},
	}
	if s, ok := ResolveString(rec, "name"); !ok || s != "padded" {
		t.Errorf("ResolveString(name) = (%q, %v), want (padded, true)", s, ok)
	}
	if s, ok := ResolveString(rec, "num"); !ok || s != "42" {
		t.Errorf("ResolveString(num) = (%q, %v), want (42, true)", s, ok)
	}
	if _, ok := ResolveString(rec, "blank"); ok {
		t.Error("ResolveString(blank) = present, want absent")
	}
	if _, ok := ResolveString(rec, "obj"); ok {
		t.Error("ResolveString(obj) = present, want absent for unrenderable value")
	}
}

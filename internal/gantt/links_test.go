package gantt

import (
	"testing"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

func linkConfig() model.FieldMappings {
	return model.FieldMappings{ID: "file.path", Text: "title", Dependency: "depends"}
}

func TestDeriveLinks_CommaSeparated(t *testing.T) {
	records := []model.RawRecord{
		{"file.path": "a.md", "title": "A"},
		{"file.path": "b.md", "title": "B"},
		{"file.path": "c.md", "title": "C", "depends": "a.md, b.md"},
	}
	ix := buildIndex(records, linkConfig())

	links := deriveLinks(records, linkConfig(), ix)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[0].Source != "a.md" || links[0].Target != "c.md" {
		t.Errorf("link 0 = %s -> %s, want a.md -> c.md", links[0].Source, links[0].Target)
	}
	if links[1].Source != "b.md" || links[1].Target != "c.md" {
		t.Errorf("link 1 = %s -> %s, want b.md -> c.md", links[1].Source, links[1].Target)
	}
	for _, l := range links {
		if l.Type != model.LinkFinishToStart {
			t.Errorf("link %s type = %q, want finish-to-start", l.ID, l.Type)
		}
	}
}

func TestDeriveLinks_Array(t *testing.T) {
	records := []model.RawRecord{
		{"file.path": "a.md", "title": "A"},
		{"file.path": "b.md", "title": "B", "depends": []any{"[[A]]"}},
	}
	ix := buildIndex(records, linkConfig())

	links := deriveLinks(records, linkConfig(), ix)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	if links[0].Source != "a.md" || links[0].Target != "b.md" {
		t.Errorf("link = %s -> %s", links[0].Source, links[0].Target)
	}
}

func TestDeriveLinks_DanglingAndSelfDropped(t *testing.T) {
	records := []model.RawRecord{
		{"file.path": "a.md", "title": "A", "depends": "missing.md, a.md"},
	}
	ix := buildIndex(records, linkConfig())

	links := deriveLinks(records, linkConfig(), ix)
	if len(links) != 0 {
		t.Errorf("got %d links, want 0", len(links))
	}
}

func TestDeriveLinks_UnmappedKeyAcceptedQuietly(t *testing.T) {
	records := []model.RawRecord{
		{"file.path": "a.md", "title": "A", "depends": "b.md"},
		{"file.path": "b.md", "title": "B"},
	}
	m := linkConfig()
	m.Dependency = ""
	ix := buildIndex(records, m)

	links := deriveLinks(records, m, ix)
	if len(links) != 0 {
		t.Errorf("got %d links with no dependency mapping, want 0", len(links))
	}
}

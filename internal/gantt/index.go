package gantt

import (
	"strings"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// refIndex is the per-batch lookup used to resolve parent and dependency
// references. It holds the set of all known task ids plus a map from every
// known display name, file basename, and file name to its id. It is rebuilt
// from scratch on every pipeline run and discarded afterwards.
type refIndex struct {
	ids   map[string]struct{}
	names map[string]string
}

// buildIndex seeds the reference index from all records in the batch using a
// minimal id/name pass. This must happen before any full record mapping:
// ids and parents are mutually referential within a batch, so parent
// resolution needs the complete id set up front.
func buildIndex(records []model.RawRecord, mappings model.FieldMappings) *refIndex {
	ix := &refIndex{
		ids:   make(map[string]struct{}, len(records)),
		names: make(map[string]string, len(records)*3),
	}
	for _, rec := range records {
		id, ok := ResolveString(rec, mappings.ID)
		if !ok {
			continue
		}
		ix.ids[id] = struct{}{}

		// Display name and file metadata all alias the id. First match wins
		// on collisions so lookups stay deterministic in input order.
		ix.addName(rec, mappings.Text, id)
		ix.addName(rec, "file.basename", id)
		ix.addName(rec, "file.name", id)
	}
	return ix
}

func (ix *refIndex) addName(rec model.RawRecord, key, id string) {
	name, ok := ResolveString(rec, key)
	if !ok {
		return
	}
	if _, exists := ix.names[name]; !exists {
		ix.names[name] = id
	}
}

// has reports whether id is a known task id in this batch.
func (ix *refIndex) has(id string) bool {
	_, ok := ix.ids[id]
	return ok
}

// resolveRef resolves a raw parent or dependency reference to a known task
// id. Accepted shapes, in order: an object carrying a path, a wikilink
// string, or a plain string. Returns ("", false) when nothing matches, when
// the candidate is not in this batch (dangling references are dropped, not
// errored), or when the match equals selfID (self-references forbidden).
func (ix *refIndex) resolveRef(ref any, selfID string) (string, bool) {
	switch r := ref.(type) {
	case map[string]any:
		return ix.resolveObjectRef(r, selfID)
	case string:
		return ix.resolveStringRef(r, selfID)
	}
	return "", false
}

// resolveObjectRef handles references shaped like {path: ...},
// {file: {path: ...}}, or {note: {path: ...}}, matching the path directly
// against the id set.
func (ix *refIndex) resolveObjectRef(obj map[string]any, selfID string) (string, bool) {
	for _, key := range []string{"path", "file.path", "note.path"} {
		v, ok := Resolve(model.RawRecord(obj), key)
		if !ok {
			continue
		}
		path, ok := v.(string)
		if !ok {
			continue
		}
		if id, ok := ix.accept(path, selfID); ok {
			return id, true
		}
	}
	return "", false
}

// resolveStringRef handles wikilinks ("[[target]]" or "[[target|alias]]")
// and plain strings, matching ids first and then names, each with and
// without a ".md" suffix.
func (ix *refIndex) resolveStringRef(s string, selfID string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if strings.HasPrefix(s, "[[") && strings.HasSuffix(s, "]]") {
		s = s[2 : len(s)-2]
		// An alias never participates in resolution, only the target.
		if i := strings.Index(s, "|"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	for _, candidate := range candidates(s) {
		if id, ok := ix.accept(candidate, selfID); ok {
			return id, true
		}
	}
	for _, candidate := range candidates(s) {
		if id, ok := ix.names[candidate]; ok {
			if id != selfID && ix.has(id) {
				return id, true
			}
		}
	}
	return "", false
}

// candidates lists the forms a reference is tried in: as given, with ".md"
// appended, and with ".md" stripped.
func candidates(s string) []string {
	out := []string{s}
	if strings.HasSuffix(s, ".md") {
		out = append(out, strings.TrimSuffix(s, ".md"))
	} else {
		out = append(out, s+".md")
	}
	return out
}

// accept admits id only when it is part of the batch and not selfID.
func (ix *refIndex) accept(id, selfID string) (string, bool) {
	if id == selfID || !ix.has(id) {
		return "", false
	}
	return id, true
}

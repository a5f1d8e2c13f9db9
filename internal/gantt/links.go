package gantt

import (
	"strconv"
	"strings"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// deriveLinks parses dependency mappings into finish-to-start links. A
// dependency value is either a comma-separated string or an array of
// references; each reference resolves through the same index as parents.
// The link runs from the dependency (predecessor) to the task. Dangling and
// self-referential targets are dropped silently, matching parent semantics.
// Link ids are stable sequence numbers in emission order.
func deriveLinks(records []model.RawRecord, m model.FieldMappings, ix *refIndex) []*model.Link {
	links := []*model.Link{}
	if m.Dependency == "" {
		return links
	}
	seq := 0
	for _, rec := range records {
		id, ok := ResolveString(rec, m.ID)
		if !ok {
			continue
		}
		for _, ref := range dependencyList(rec, m.Dependency) {
			pred, ok := ix.resolveRef(ref, id)
			if !ok {
				continue
			}
			seq++
			links = append(links, &model.Link{
				ID:     strconv.Itoa(seq),
				Source: pred,
				Target: id,
				Type:   model.LinkFinishToStart,
			})
		}
	}
	return links
}

// dependencyList reads the dependency mapping as raw references. Strings
// split on commas; arrays pass through element by element.
func dependencyList(rec model.RawRecord, key string) []any {
	v, ok := Resolve(rec, key)
	if !ok {
		return nil
	}
	switch d := v.(type) {
	case []any:
		return d
	case string:
		var out []any
		for _, part := range strings.Split(d, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return []any{v}
}

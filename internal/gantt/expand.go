package gantt

import (
	"fmt"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// expand turns tasks carrying a multi-parent attachment into per-parent
// variants. The primary keeps its id and already-resolved parent; each
// subsequent raw parent (1-based index n) yields a duplicate with id
// "{id}::v{n}" under that parent, sharing the primary's NoteID and all other
// fields. Emission follows raw list order so display order is reproducible
// from the same input. A dangling entry drops only that duplicate, never the
// record. Tasks without an attachment pass through unchanged, immediately
// followed by their duplicates.
func expand(tasks []*model.Task, ix *refIndex) []*model.Task {
	out := make([]*model.Task, 0, len(tasks))
	for _, task := range tasks {
		refs := task.RawParents()
		out = append(out, task.Clone())
		if len(refs) < 2 {
			continue
		}
		for i := 1; i < len(refs); i++ {
			parent, ok := ix.resolveRef(refs[i], task.ID)
			if !ok {
				continue
			}
			dup := task.Clone()
			dup.ID = fmt.Sprintf("%s::v%d", task.ID, i)
			dup.Parent = parent
			dup.Kind = model.KindVirtual
			dup.Sequence = i
			out = append(out, dup)
		}
	}
	return out
}

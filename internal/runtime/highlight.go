package runtime

import (
	"github.com/aretw0/lcsviz/pkg/domain"
)

// Highlight derives the cells to emphasize from an engine result and a
// playback position: the path entries while the path is shown, otherwise
// the single fill event under the cursor. It never mutates its inputs.
func Highlight(res domain.Result, pos domain.Position) domain.Highlight {
	if pos.ShowPath {
		path := make([]domain.PathEntry, len(res.Path))
		copy(path, res.Path)
		return domain.Highlight{Path: path}
	}
	if pos.Cursor < 0 || pos.Cursor >= len(res.Events) {
		return domain.Highlight{}
	}
	current := res.Events[pos.Cursor]
	return domain.Highlight{Current: &current}
}

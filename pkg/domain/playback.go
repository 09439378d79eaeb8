package domain

import (
	"fmt"
	"time"
)

// Position is the playback state over the fill-event timeline.
type Position struct {
	// Cursor indexes the current fill event, in [0, Steps-1].
	Cursor int `json:"cursor"`

	// ShowPath is true once the timeline has been exhausted and the
	// backtracked path is displayed instead of the current event.
	ShowPath bool `json:"show_path"`

	// Playing indicates whether auto-play is enabled.
	Playing bool `json:"playing"`
}

// HighlightKind is the colouring class of a single cell.
type HighlightKind string

const (
	HighlightNone   HighlightKind = ""
	HighlightMatch  HighlightKind = "match"
	HighlightExtend HighlightKind = "extend"
	HighlightPath   HighlightKind = "path"
)

// Highlight is the set of cells to emphasize at one instant: either the
// path entries or exactly one fill event, never both.
type Highlight struct {
	Current *FillEvent  `json:"current,omitempty"`
	Path    []PathEntry `json:"path,omitempty"`
}

// KindAt classifies cell (i, j) under this highlight.
func (h Highlight) KindAt(i, j int) HighlightKind {
	for _, p := range h.Path {
		if p.I == i && p.J == j {
			return HighlightPath
		}
	}
	if h.Current != nil && h.Current.I == i && h.Current.J == j {
		if h.Current.Kind == KindMatch {
			return HighlightMatch
		}
		return HighlightExtend
	}
	return HighlightNone
}

// Progress feeds a progress indicator.
type Progress struct {
	Step    int     `json:"step"` // 1-based, 0 when there are no steps
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// String renders the progress label, e.g. "Step 3 of 42".
func (p Progress) String() string {
	return fmt.Sprintf("Step %d of %d", p.Step, p.Total)
}

// NewProgress derives progress metrics from a position.
func NewProgress(pos Position, total int) Progress {
	p := Progress{Total: total}
	if total == 0 {
		return p
	}
	p.Step = pos.Cursor + 1
	if pos.ShowPath {
		p.Percent = 100
	} else {
		p.Percent = float64(pos.Cursor) / float64(total) * 100
	}
	return p
}

// Frame is a full snapshot handed to renderers and sinks.
type Frame struct {
	// Seq increases by one for every published frame of a visualizer.
	Seq uint64 `json:"seq"`

	A      string `json:"a"`
	B      string `json:"b"`
	Table  Table  `json:"table"`
	LCS    string `json:"lcs"`
	Length int    `json:"length"`

	Position  Position      `json:"position"`
	Highlight Highlight     `json:"highlight"`
	Progress  Progress      `json:"progress"`
	Delay     time.Duration `json:"delay"`
}

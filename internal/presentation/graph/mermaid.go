package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lcsviz/pkg/domain"
)

// Overlay contains playback state to visualize on the graph.
type Overlay struct {
	ShowPath bool
	Current  *domain.Cell
}

// GenerateMermaid produces a Mermaid flowchart of the backtrack trail,
// from the bottom-right cell to where the walk left the table.
// It applies semantic styling:
// - Match: ((Circle)) labelled with the matched character
// - Other: [Rectangle]
// Edges are labelled with the move taken: "match X", "up" or "left".
// Overlay styles (path, current) are applied if provided.
func GenerateMermaid(res domain.Result, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if len(res.Trail) == 0 {
		sb.WriteString("    empty[\"no common subsequence\"]\n")
		return sb.String()
	}

	a := []rune(res.A)
	matches := make(map[domain.Cell]string, len(res.Path))
	for _, p := range res.Path {
		matches[p.Cell] = p.Char
	}

	for k, c := range res.Trail {
		id := nodeID(c)
		value := res.Table.At(c.I, c.J)
		if ch, ok := matches[c]; ok {
			fmt.Fprintf(&sb, "    %s((\"%s (%d,%d) = %d\"))\n", id, escape(ch), c.I, c.J, value)
		} else {
			fmt.Fprintf(&sb, "    %s[\"(%d,%d) = %d\"]\n", id, c.I, c.J, value)
		}

		if k+1 < len(res.Trail) {
			next := res.Trail[k+1]
			var label string
			switch {
			case next.I == c.I-1 && next.J == c.J-1:
				label = "match " + escape(string(a[c.I-1]))
			case next.I == c.I-1:
				label = "up"
			default:
				label = "left"
			}
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", id, label, nodeID(next))
		}
	}

	sb.WriteString("\n    classDef match fill:#93c5fd,stroke:#1d4ed8,color:#000;\n")
	for _, p := range res.Path {
		fmt.Fprintf(&sb, "    class %s match;\n", nodeID(p.Cell))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on light fills regardless of theme
		sb.WriteString("    classDef path fill:#4ade80,stroke:#166534,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef current fill:#fef08a,stroke:#ca8a04,stroke-width:4px,color:#000;\n")

		if overlay.ShowPath {
			for _, p := range res.Path {
				fmt.Fprintf(&sb, "    class %s path;\n", nodeID(p.Cell))
			}
		}
		if overlay.Current != nil && onTrail(res.Trail, *overlay.Current) {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(*overlay.Current))
		}
	}

	return sb.String()
}

// OverlayFor derives the overlay of a frame.
func OverlayFor(f domain.Frame) *Overlay {
	o := &Overlay{ShowPath: f.Position.ShowPath}
	if f.Highlight.Current != nil {
		c := f.Highlight.Current.Cell
		o.Current = &c
	}
	return o
}

func onTrail(trail []domain.Cell, c domain.Cell) bool {
	for _, t := range trail {
		if t == c {
			return true
		}
	}
	return false
}

func nodeID(c domain.Cell) string {
	return fmt.Sprintf("c%d_%d", c.I, c.J)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

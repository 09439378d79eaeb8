package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/muesli/termenv"
)

// Cell colours, the same in the table and the legend.
const (
	MatchColor  = "#93c5fd"
	ExtendColor = "#fef08a"
	PathColor   = "#4ade80"
	textColor   = "#000000"
)

// Renderer draws frames as terminal text. With the termenv.Ascii profile
// highlights fall back to markers: [v] for the current cell, *v* for path
// cells.
type Renderer struct {
	Profile termenv.Profile
	// BarWidth is the width of the progress bar in cells.
	BarWidth int
}

// NewRenderer creates a renderer for the given colour profile.
func NewRenderer(p termenv.Profile) *Renderer {
	return &Renderer{Profile: p, BarWidth: 40}
}

func (r *Renderer) mono() bool {
	return r.Profile == termenv.Ascii
}

// Table renders the DP table with the frame's highlight applied.
func (r *Renderer) Table(f domain.Frame) string {
	if len(f.Table) == 0 {
		return ""
	}
	a, b := []rune(f.A), []rune(f.B)

	var sb strings.Builder
	sb.WriteString("       ")
	for _, c := range b {
		fmt.Fprintf(&sb, "  %c ", c)
	}
	sb.WriteString("\n")

	for i, row := range f.Table {
		label := ' '
		if i > 0 {
			label = a[i-1]
		}
		fmt.Fprintf(&sb, " %c ", label)
		for j, v := range row {
			sb.WriteString(r.cell(v, f.Highlight.KindAt(i, j)))
		}
		sb.WriteString("\n")
	}
	return trimLines(sb.String())
}

func (r *Renderer) cell(v int, kind domain.HighlightKind) string {
	body := fmt.Sprintf("%2d", v)
	if r.mono() {
		switch kind {
		case domain.HighlightMatch, domain.HighlightExtend:
			return "[" + body + "]"
		case domain.HighlightPath:
			return "*" + body + "*"
		}
		return " " + body + " "
	}

	var bg string
	switch kind {
	case domain.HighlightMatch:
		bg = MatchColor
	case domain.HighlightExtend:
		bg = ExtendColor
	case domain.HighlightPath:
		bg = PathColor
	default:
		return " " + body + " "
	}
	return termenv.String(" " + body + " ").
		Foreground(r.Profile.Color(textColor)).
		Background(r.Profile.Color(bg)).
		String()
}

// Progress renders the step label and a bar proportional to the percentage.
func (r *Renderer) Progress(f domain.Frame) string {
	label := f.Progress.String()
	if f.Position.ShowPath {
		label += " (showing LCS path)"
	}

	width := r.BarWidth
	if width <= 0 {
		width = 40
	}
	filled := int(f.Progress.Percent/100*float64(width) + 0.5)
	filled = min(max(filled, 0), width)

	done := strings.Repeat("#", filled)
	if !r.mono() {
		done = termenv.String(done).Foreground(r.Profile.Color("#2563eb")).String()
	}
	return fmt.Sprintf("%s\n[%s%s]", label, done, strings.Repeat("-", width-filled))
}

// Result renders the LCS line.
func (r *Renderer) Result(f domain.Frame) string {
	return fmt.Sprintf("LCS Result: %s (Length: %d)", f.LCS, f.Length)
}

// Legend explains the highlight colours or markers.
func (r *Renderer) Legend() string {
	if r.mono() {
		return "[v] current cell   *v* LCS path"
	}
	swatch := func(hex string) string {
		return termenv.String("   ").Background(r.Profile.Color(hex)).String()
	}
	return fmt.Sprintf("%s Character Match   %s Max Value   %s LCS Path",
		swatch(MatchColor), swatch(ExtendColor), swatch(PathColor))
}

// Status renders the auto-play state and delay.
func (r *Renderer) Status(f domain.Frame) string {
	state := "paused"
	if f.Position.Playing {
		state = "playing"
	}
	return fmt.Sprintf("Auto-play: %s   Speed: %s", state, f.Delay.Round(time.Millisecond))
}

// Frame renders the full screen body for a frame.
func (r *Renderer) Frame(f domain.Frame) string {
	parts := []string{
		fmt.Sprintf("String 1: %s\nString 2: %s", f.A, f.B),
		r.Progress(f),
		r.Result(f),
	}
	if t := r.Table(f); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, r.Legend(), r.Status(f))
	return strings.Join(parts, "\n\n") + "\n"
}

func trimLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

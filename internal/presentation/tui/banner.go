package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the lcsviz ASCII art banner.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Blue to green, the match and path colours of the table
	lines := []struct{ text, hex string }{
		{"  _               _      ", "#60a5fa"},
		{" | | ___ ___ __ _(_)____", "#38bdf8"},
		{" | |/ __/ __|\\ \\ / |_  /", "#22d3ee"},
		{" | | (__\\__ \\ \\ V /| |/ / ", "#2dd4bf"},
		{" |_|\\___|___/  \\_/ |_/___|", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.hex)))
	}
	fmt.Fprintln(w)
}

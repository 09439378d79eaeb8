package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Explanation is the "How it works" text shown below the table.
const Explanation = `## How it works

The LCS algorithm uses dynamic programming to find the longest subsequence
common to two strings. The table shows the length of the LCS for each prefix
of the two strings. The final LCS is found by backtracking from the
bottom-right corner of the table.

- When characters match, we take the diagonal value + 1
- When characters don't match, we take the maximum of the left and top values
- The highlighted path shows the actual characters in the LCS
`

// NewMarkdownRenderer returns a function that renders markdown using glamour.
// The Ascii profile gets the plain "notty" style; otherwise the style follows
// the terminal background.
func NewMarkdownRenderer(p termenv.Profile, width int) func(string) (string, error) {
	style := glamour.WithAutoStyle()
	if p == termenv.Ascii {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

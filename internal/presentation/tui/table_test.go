package tui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameAt(t *testing.T, a, b string, steps int) domain.Frame {
	t.Helper()
	v := lcsviz.New(a, b)
	t.Cleanup(func() { _ = v.Close() })
	f := v.Frame()
	for range steps {
		f = v.StepForward(context.Background())
	}
	return f
}

func TestTable_Monochrome(t *testing.T) {
	r := tui.NewRenderer(termenv.Ascii)

	t.Run("Current Cell", func(t *testing.T) {
		got := r.Table(frameAt(t, "AB", "BA", 1))
		want := strings.Join([]string{
			"         B   A",
			"     0   0   0",
			" A   0   0 [ 1]",
			" B   0   1   1",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("Path", func(t *testing.T) {
		got := r.Table(frameAt(t, "AB", "BA", 4))
		assert.Contains(t, got, " B   0 * 1*  1")
		assert.NotContains(t, got, "[")
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", r.Table(domain.Frame{}))
	})
}

func TestTable_Color(t *testing.T) {
	r := tui.NewRenderer(termenv.TrueColor)
	got := r.Table(frameAt(t, "AB", "BA", 1))

	assert.Contains(t, got, "\x1b[", "escape sequences are emitted")
	assert.NotContains(t, got, "[ 1]", "markers are only used without colour")
}

func TestProgress(t *testing.T) {
	r := tui.NewRenderer(termenv.Ascii)
	r.BarWidth = 8

	got := r.Progress(frameAt(t, "AB", "BA", 2))
	assert.Equal(t, "Step 3 of 4\n[####----]", got)

	got = r.Progress(frameAt(t, "AB", "BA", 4))
	assert.Equal(t, "Step 4 of 4 (showing LCS path)\n[########]", got)

	got = r.Progress(domain.Frame{})
	assert.Equal(t, "Step 0 of 0\n[--------]", got)
}

func TestFrame(t *testing.T) {
	r := tui.NewRenderer(termenv.Ascii)
	out := r.Frame(frameAt(t, "abcbdab", "bdcaba", 0))

	assert.Contains(t, out, "String 1: ABCBDAB")
	assert.Contains(t, out, "LCS Result: BDAB (Length: 4)")
	assert.Contains(t, out, "[v] current cell")
	assert.Contains(t, out, "Auto-play: paused   Speed: 500ms")
	assert.Contains(t, out, " A   0 [ 0]  0")
}

func TestLegend_Color(t *testing.T) {
	got := tui.NewRenderer(termenv.ANSI256).Legend()
	assert.Contains(t, got, "Character Match")
	assert.Contains(t, got, "Max Value")
	assert.Contains(t, got, "LCS Path")
}

func TestExplanation(t *testing.T) {
	render := tui.NewMarkdownRenderer(termenv.Ascii, 80)
	out, err := render(tui.Explanation)
	require.NoError(t, err)
	assert.Contains(t, out, "How it works")
	assert.Contains(t, out, "diagonal value + 1")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), "|_|\\___|___/")
	assert.NotContains(t, buf.String(), "\x1b[")
}

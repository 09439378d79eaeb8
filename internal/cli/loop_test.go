package cli

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/aretw0/lcsviz/pkg/adapters/memory"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoop(t *testing.T, input string, opts ...lcsviz.Option) (*Loop, *bytes.Buffer) {
	t.Helper()
	clock := &runner.ManualClock{}
	opts = append(opts, lcsviz.WithTickerFactory(clock.Factory))
	viz := lcsviz.New("ABCBDAB", "BDCABA", opts...)
	t.Cleanup(func() { _ = viz.Close() })

	var out bytes.Buffer
	return &Loop{
		Viz:      viz,
		Renderer: tui.NewRenderer(termenv.Ascii),
		In:       strings.NewReader(input),
		Out:      &out,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	}, &out
}

func TestLoop_StepsAndQuit(t *testing.T) {
	l, out := newLoop(t, "nnq")

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 2, l.Viz.Position().Cursor)
	assert.Contains(t, out.String(), KeyHelp)

	screens := out.String()
	last := screens[strings.LastIndex(screens, "\x1b[2J"):]
	assert.Contains(t, last, "Step 3 of 42", "final screen shows the frame at quit")
}

func TestLoop_CommandsAfterQuitAreIgnored(t *testing.T) {
	l, _ := newLoop(t, "nqnnn")

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 1, l.Viz.Position().Cursor)
}

func TestLoop_EOFEndsSession(t *testing.T) {
	l, out := newLoop(t, "nnp")

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 1, l.Viz.Position().Cursor)
	assert.Contains(t, out.String(), "Step 2 of 42")
}

func TestLoop_Speed(t *testing.T) {
	t.Run("Faster", func(t *testing.T) {
		l, _ := newLoop(t, "+q")
		require.NoError(t, l.Run(context.Background()))
		assert.Equal(t, domain.DefaultDelay-domain.DelayStep, l.Viz.Delay())
	})

	t.Run("Slower Clamps", func(t *testing.T) {
		l, _ := newLoop(t, strings.Repeat("-", 10)+"q")
		require.NoError(t, l.Run(context.Background()))
		assert.Equal(t, domain.MaxDelay, l.Viz.Delay())
	})
}

func TestLoop_RandomAndReset(t *testing.T) {
	l, _ := newLoop(t, "nngq")

	require.NoError(t, l.Run(context.Background()))
	res := l.Viz.Result()
	assert.Len(t, []rune(res.A), domain.DefaultRandomLength)
	assert.Len(t, []rune(res.B), domain.DefaultRandomLength)
	assert.Equal(t, 0, l.Viz.Position().Cursor)

	l2, _ := newLoop(t, "nnnrq")
	require.NoError(t, l2.Run(context.Background()))
	assert.Equal(t, domain.Position{}, l2.Viz.Position())
}

func TestLoop_RawModeLineEndings(t *testing.T) {
	l, out := newLoop(t, "q")
	l.Raw = true

	require.NoError(t, l.Run(context.Background()))
	assert.Contains(t, out.String(), "\r\n")
	assert.NotContains(t, strings.ReplaceAll(out.String(), "\r\n", ""), "\n")
}

func TestLoop_RedrawsFromFrameSource(t *testing.T) {
	b := memory.NewBroadcaster()
	l, out := newLoop(t, "nq", lcsviz.WithFrameSink(b))
	l.Frames = b
	l.Explanation = "How it works"

	require.NoError(t, l.Run(context.Background()))
	assert.Contains(t, out.String(), "How it works")
	assert.Equal(t, 0, b.Subscribers(), "subscription released on exit")
}

func TestLoop_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	l, _ := newLoop(t, "")
	l.In = pr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	_, err := pw.Write([]byte("n"))
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return l.Viz.Position().Cursor == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}

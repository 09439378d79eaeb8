package runner_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/lcsviz/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_TicksUntilFunctionStops(t *testing.T) {
	clock := &runner.ManualClock{}
	var calls atomic.Int32
	p := runner.NewPlayer(func(ctx context.Context) bool {
		return calls.Add(1) < 3
	}, runner.WithTickerFactory(clock.Factory))

	p.Start(200 * time.Millisecond)
	require.True(t, p.Running())
	tk := clock.Last()
	require.NotNil(t, tk)
	assert.Equal(t, 200*time.Millisecond, tk.Delay)

	assert.True(t, tk.Fire())
	assert.True(t, tk.Fire())
	assert.True(t, p.Running())
	assert.True(t, tk.Fire(), "third tick is delivered and ends auto-play")

	assert.EqualValues(t, 3, calls.Load())
	assert.False(t, p.Running(), "player disarms itself")
	assert.Eventually(t, tk.Stopped, time.Second, 5*time.Millisecond)
	assert.False(t, tk.Fire(), "no tick is delivered after disarming")
}

func TestPlayer_RestartCancelsPrevious(t *testing.T) {
	clock := &runner.ManualClock{}
	var calls atomic.Int32
	p := runner.NewPlayer(func(ctx context.Context) bool {
		calls.Add(1)
		return true
	}, runner.WithTickerFactory(clock.Factory))

	p.Start(100 * time.Millisecond)
	first := clock.Last()
	p.Start(300 * time.Millisecond)
	second := clock.Last()

	require.Equal(t, 2, clock.Count())
	assert.Eventually(t, first.Stopped, time.Second, 5*time.Millisecond, "previous ticker must be cancelled")
	assert.False(t, second.Stopped())
	assert.True(t, second.Fire())
	assert.EqualValues(t, 1, calls.Load())

	p.Stop()
}

func TestPlayer_StopIsIdempotent(t *testing.T) {
	clock := &runner.ManualClock{}
	p := runner.NewPlayer(func(ctx context.Context) bool { return true }, runner.WithTickerFactory(clock.Factory))

	assert.False(t, p.Stop(), "nothing armed yet")
	p.Start(100 * time.Millisecond)
	assert.True(t, p.Stop())
	assert.False(t, p.Stop())
	assert.False(t, p.Running())
	assert.Eventually(t, clock.Last().Stopped, time.Second, 5*time.Millisecond)
}

func TestPlayer_SetDelay(t *testing.T) {
	clock := &runner.ManualClock{}
	p := runner.NewPlayer(func(ctx context.Context) bool { return true }, runner.WithTickerFactory(clock.Factory))

	t.Run("Stopped Player Only Records", func(t *testing.T) {
		p.SetDelay(700 * time.Millisecond)
		assert.Equal(t, 700*time.Millisecond, p.Delay())
		assert.Equal(t, 0, clock.Count())
		assert.False(t, p.Running())
	})

	t.Run("Running Player Re-Arms", func(t *testing.T) {
		p.Start(500 * time.Millisecond)
		old := clock.Last()
		p.SetDelay(100 * time.Millisecond)
		current := clock.Last()

		assert.NotSame(t, old, current)
		assert.Equal(t, 100*time.Millisecond, current.Delay)
		assert.Eventually(t, old.Stopped, time.Second, 5*time.Millisecond)
		assert.True(t, p.Running())
		p.Stop()
	})
}

func TestPlayer_BaseContextCancellation(t *testing.T) {
	clock := &runner.ManualClock{}
	ctx, cancel := context.WithCancel(context.Background())
	p := runner.NewPlayer(func(ctx context.Context) bool { return true },
		runner.WithTickerFactory(clock.Factory),
		runner.WithBaseContext(ctx),
	)

	p.Start(100 * time.Millisecond)
	cancel()

	assert.Eventually(t, clock.Last().Stopped, time.Second, 5*time.Millisecond)
}

func TestPlayer_RealTicker(t *testing.T) {
	done := make(chan struct{})
	var calls atomic.Int32
	p := runner.NewPlayer(func(ctx context.Context) bool {
		if calls.Add(1) == 2 {
			close(done)
			return false
		}
		return true
	})

	p.Start(10 * time.Millisecond)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("real ticker did not fire")
	}
	assert.Eventually(t, func() bool { return !p.Running() }, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 2, calls.Load())
}

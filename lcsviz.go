package lcsviz

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lcsviz/internal/runtime"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports"
	"github.com/aretw0/lcsviz/pkg/runner"
)

// Visualizer is the high-level entry point of the library.
// It owns the input pair, the cached engine result, the playback controller
// and the auto-play player, and is safe for concurrent use.
type Visualizer struct {
	mu     sync.Mutex
	pubMu  sync.Mutex // serializes hooks and sinks in Seq order
	closed bool
	a, b   []rune
	result domain.Result
	ctrl   runtime.Controller
	delay  time.Duration
	seq    uint64

	player    *runner.Player
	normalize Normalizer
	hooks     domain.LifecycleHooks
	sinks     []ports.FrameSink
	logger    *slog.Logger
	tickers   runner.TickerFactory

	base   context.Context
	cancel context.CancelFunc
}

// Option defines a functional option for configuring the Visualizer.
type Option func(*Visualizer)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Visualizer) {
		v.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Hooks run in event
// order and must not call back into the Visualizer.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(v *Visualizer) {
		v.hooks = hooks
	}
}

// WithFrameSink adds a sink receiving a Frame after every state change.
// It may be given more than once. Frames arrive in Seq order; a sink must
// not call back into the Visualizer.
func WithFrameSink(sink ports.FrameSink) Option {
	return func(v *Visualizer) {
		v.sinks = append(v.sinks, sink)
	}
}

// WithDelay sets the initial auto-play delay. It is clamped into
// [domain.MinDelay, domain.MaxDelay].
func WithDelay(d time.Duration) Option {
	return func(v *Visualizer) {
		v.delay = domain.ClampDelay(d)
	}
}

// WithNormalizer replaces the input normalizer (default: DefaultNormalizer).
func WithNormalizer(n Normalizer) Option {
	return func(v *Visualizer) {
		v.normalize = n
	}
}

// WithTickerFactory replaces the auto-play ticker source.
func WithTickerFactory(f runner.TickerFactory) Option {
	return func(v *Visualizer) {
		v.tickers = f
	}
}

// New creates a Visualizer over the given input pair, positioned at the
// first fill event.
func New(a, b string, opts ...Option) *Visualizer {
	v := &Visualizer{
		delay:     domain.DefaultDelay,
		normalize: DefaultNormalizer,
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.logger == nil {
		v.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	v.base, v.cancel = context.WithCancel(context.Background())

	playerOpts := []runner.Option{
		runner.WithLogger(v.logger),
		runner.WithBaseContext(v.base),
	}
	if v.tickers != nil {
		playerOpts = append(playerOpts, runner.WithTickerFactory(v.tickers))
	}
	v.player = runner.NewPlayer(v.advance, playerOpts...)

	v.a, v.b = v.normalize(a), v.normalize(b)
	v.result, v.ctrl = runtime.OnSequencesChanged(v.a, v.b)
	v.logger.Debug("Sequences computed", "a", string(v.a), "b", string(v.b), "steps", v.result.Steps(), "lcs", v.result.LCS)

	return v
}

// Result returns the cached engine result for the current input pair.
func (v *Visualizer) Result() domain.Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Frame returns a snapshot of the current state without publishing it.
func (v *Visualizer) Frame() domain.Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frameLocked()
}

// Position returns the current playback position.
func (v *Visualizer) Position() domain.Position {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ctrl.Position()
}

// Delay returns the current auto-play delay.
func (v *Visualizer) Delay() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.delay
}

// SetSequences replaces the input pair. When either sequence differs after
// normalization, auto-play is stopped, the engine result is recomputed and
// the controller is reset. It reports whether anything changed.
func (v *Visualizer) SetSequences(ctx context.Context, a, b string) bool {
	na, nb := v.normalize(a), v.normalize(b)

	v.mu.Lock()
	if string(na) == string(v.a) && string(nb) == string(v.b) {
		v.mu.Unlock()
		return false
	}
	v.player.Stop()
	v.a, v.b = na, nb
	v.result, v.ctrl = runtime.OnSequencesChanged(na, nb)
	res := v.result
	frame := v.nextFrameLocked()
	v.handoffLocked()
	defer v.pubMu.Unlock()

	v.logger.Debug("Sequences computed", "a", res.A, "b", res.B, "steps", res.Steps(), "lcs", res.LCS)
	if v.hooks.OnRecompute != nil {
		v.hooks.OnRecompute(ctx, &domain.RecomputeEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRecompute},
			A:         res.A,
			B:         res.B,
			Steps:     res.Steps(),
			Length:    res.Length(),
			LCS:       res.LCS,
		})
	}
	v.publish(ctx, frame)
	return true
}

// StepForward advances one fill event, or reveals the path after the last.
func (v *Visualizer) StepForward(ctx context.Context) domain.Frame {
	return v.step(ctx, domain.Forward)
}

// StepBackward hides the path, or moves back one fill event.
func (v *Visualizer) StepBackward(ctx context.Context) domain.Frame {
	return v.step(ctx, domain.Backward)
}

func (v *Visualizer) step(ctx context.Context, dir domain.Direction) domain.Frame {
	v.mu.Lock()
	before := v.ctrl.Position()
	var moved bool
	if dir == domain.Forward {
		moved = v.ctrl.StepForward()
	} else {
		moved = v.ctrl.StepBackward()
	}
	if !moved {
		frame := v.frameLocked()
		v.mu.Unlock()
		return frame
	}
	ev := v.stepEventLocked(before, dir, false)
	frame := v.nextFrameLocked()
	v.handoffLocked()
	defer v.pubMu.Unlock()

	v.emitStep(ctx, ev)
	v.publish(ctx, frame)
	return frame
}

// advance is the auto-play tick. It runs on the player goroutine.
func (v *Visualizer) advance(ctx context.Context) bool {
	v.mu.Lock()
	if ctx.Err() != nil {
		// auto-play was stopped while this tick was in flight
		v.mu.Unlock()
		return false
	}
	before := v.ctrl.Position()
	if !v.ctrl.Tick() {
		frame := v.nextFrameLocked()
		delay := v.delay
		v.handoffLocked()
		defer v.pubMu.Unlock()

		v.logger.Debug("Auto-play finished", "cursor", before.Cursor)
		v.emitPlayback(ctx, domain.EventPause, frame.Position, delay)
		v.publish(ctx, frame)
		return false
	}
	ev := v.stepEventLocked(before, domain.Forward, true)
	frame := v.nextFrameLocked()
	v.handoffLocked()
	defer v.pubMu.Unlock()

	v.emitStep(ctx, ev)
	v.publish(ctx, frame)
	return true
}

// TogglePlay flips auto-play; at the end of the timeline it restarts from
// the first event. After Close it never starts auto-play.
func (v *Visualizer) TogglePlay(ctx context.Context) domain.Frame {
	v.mu.Lock()
	return v.togglePlayLocked(ctx)
}

// Play enables auto-play unless it is already running.
func (v *Visualizer) Play(ctx context.Context) domain.Frame {
	v.mu.Lock()
	if v.ctrl.Position().Playing {
		frame := v.frameLocked()
		v.mu.Unlock()
		return frame
	}
	return v.togglePlayLocked(ctx)
}

// togglePlayLocked must be called with v.mu held; it releases it.
func (v *Visualizer) togglePlayLocked(ctx context.Context) domain.Frame {
	if v.closed && !v.ctrl.Position().Playing {
		frame := v.frameLocked()
		v.mu.Unlock()
		return frame
	}
	before := v.ctrl.Position()
	playing := v.ctrl.TogglePlay()
	if playing {
		v.player.Start(v.delay)
	} else {
		v.player.Stop()
	}
	if before == v.ctrl.Position() {
		frame := v.frameLocked()
		v.mu.Unlock()
		return frame
	}
	frame := v.nextFrameLocked()
	delay := v.delay
	v.handoffLocked()
	defer v.pubMu.Unlock()

	if playing {
		v.emitPlayback(ctx, domain.EventPlay, frame.Position, delay)
	} else {
		v.emitPlayback(ctx, domain.EventPause, frame.Position, delay)
	}
	v.publish(ctx, frame)
	return frame
}

// Pause disables auto-play.
func (v *Visualizer) Pause(ctx context.Context) domain.Frame {
	v.mu.Lock()
	v.player.Stop()
	if !v.ctrl.Pause() {
		frame := v.frameLocked()
		v.mu.Unlock()
		return frame
	}
	frame := v.nextFrameLocked()
	delay := v.delay
	v.handoffLocked()
	defer v.pubMu.Unlock()

	v.emitPlayback(ctx, domain.EventPause, frame.Position, delay)
	v.publish(ctx, frame)
	return frame
}

// Reset returns to the first fill event with path display and auto-play off.
func (v *Visualizer) Reset(ctx context.Context) domain.Frame {
	v.mu.Lock()
	v.player.Stop()
	v.ctrl.Reset()
	frame := v.nextFrameLocked()
	delay := v.delay
	v.handoffLocked()
	defer v.pubMu.Unlock()

	v.emitPlayback(ctx, domain.EventReset, frame.Position, delay)
	v.publish(ctx, frame)
	return frame
}

// SetDelay changes the auto-play delay, clamped into the supported range,
// and returns the effective value. A running auto-play picks it up from
// the next tick.
func (v *Visualizer) SetDelay(ctx context.Context, d time.Duration) time.Duration {
	d = domain.ClampDelay(d)

	v.mu.Lock()
	if d == v.delay {
		v.mu.Unlock()
		return d
	}
	v.delay = d
	if v.ctrl.Position().Playing {
		v.player.SetDelay(d)
	}
	frame := v.nextFrameLocked()
	v.handoffLocked()
	defer v.pubMu.Unlock()

	v.emitPlayback(ctx, domain.EventDelay, frame.Position, d)
	v.publish(ctx, frame)
	return d
}

// Close stops auto-play for good. The Visualizer stays readable.
func (v *Visualizer) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.player.Stop()
	v.ctrl.Pause()
	v.cancel()
	return nil
}

// handoffLocked trades v.mu for v.pubMu so that frames reach hooks and
// sinks in Seq order. Hooks and sinks must not call back into the
// Visualizer.
func (v *Visualizer) handoffLocked() {
	v.pubMu.Lock()
	v.mu.Unlock()
}

func (v *Visualizer) frameLocked() domain.Frame {
	pos := v.ctrl.Position()
	return domain.Frame{
		Seq:       v.seq,
		A:         v.result.A,
		B:         v.result.B,
		Table:     v.result.Table,
		LCS:       v.result.LCS,
		Length:    v.result.Length(),
		Position:  pos,
		Highlight: runtime.Highlight(v.result, pos),
		Progress:  domain.NewProgress(pos, v.result.Steps()),
		Delay:     v.delay,
	}
}

func (v *Visualizer) nextFrameLocked() domain.Frame {
	v.seq++
	return v.frameLocked()
}

func (v *Visualizer) stepEventLocked(before domain.Position, dir domain.Direction, auto bool) *domain.StepEvent {
	pos := v.ctrl.Position()
	ev := &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep},
		Direction: dir,
		Position:  pos,
		Auto:      auto,
	}
	if !pos.ShowPath && pos.Cursor < len(v.result.Events) {
		fill := v.result.Events[pos.Cursor]
		ev.Fill = &fill
	}
	if pos.ShowPath && !before.ShowPath {
		ev.Type = domain.EventReveal
	}
	return ev
}

func (v *Visualizer) emitStep(ctx context.Context, ev *domain.StepEvent) {
	v.logger.Debug("Step", "direction", ev.Direction, "cursor", ev.Position.Cursor, "show_path", ev.Position.ShowPath, "auto", ev.Auto)
	if v.hooks.OnStep != nil {
		v.hooks.OnStep(ctx, ev)
	}
	if ev.Type == domain.EventReveal && v.hooks.OnReveal != nil {
		v.hooks.OnReveal(ctx, ev)
	}
}

func (v *Visualizer) emitPlayback(ctx context.Context, typ domain.EventType, pos domain.Position, delay time.Duration) {
	v.logger.Debug("Playback", "event", typ, "playing", pos.Playing, "delay", delay)
	if v.hooks.OnPlayback != nil {
		v.hooks.OnPlayback(ctx, &domain.PlaybackEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
			Position:  pos,
			Delay:     delay,
		})
	}
}

// publish hands the frame to every sink. Sink failures are logged and
// never reach the caller.
func (v *Visualizer) publish(ctx context.Context, frame domain.Frame) {
	for _, sink := range v.sinks {
		if err := sink.Publish(ctx, frame); err != nil {
			v.logger.Warn("Frame sink failed", "seq", frame.Seq, "error", err)
		}
	}
}

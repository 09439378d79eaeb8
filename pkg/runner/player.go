package runner

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// TickFunc is invoked on every tick with the context of the armed ticker.
// Returning false ends auto-play; the Player then disarms itself.
// Implementations must check ctx.Err() before acting: a tick may race with
// a Stop issued from another goroutine.
type TickFunc func(ctx context.Context) bool

// Player drives a TickFunc on a fixed cadence with at most one outstanding
// ticker. It is safe for concurrent use.
type Player struct {
	tick      TickFunc
	newTicker TickerFactory
	base      context.Context
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	delay  time.Duration
	gen    uint64
}

// NewPlayer creates a stopped Player.
func NewPlayer(tick TickFunc, opts ...Option) *Player {
	p := &Player{
		tick:      tick,
		newTicker: NewRealTicker,
		base:      context.Background(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start arms the ticker at the given delay, cancelling any ticker that was
// already armed.
func (p *Player) Start(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.disarm()
	p.arm(delay)
}

// Stop cancels the outstanding ticker, if any. It reports whether a ticker
// was armed. Stop never waits for an in-flight tick.
func (p *Player) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	armed := p.cancel != nil
	p.disarm()
	return armed
}

// SetDelay changes the cadence. A running Player is re-armed so that the
// new delay applies from the next tick on.
func (p *Player) SetDelay(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.delay = delay
	if p.cancel != nil {
		p.disarm()
		p.arm(delay)
	}
}

// Delay returns the last delay passed to Start or SetDelay.
func (p *Player) Delay() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.delay
}

// Running reports whether a ticker is armed.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// arm must be called with p.mu held and no ticker armed.
func (p *Player) arm(delay time.Duration) {
	ctx, cancel := context.WithCancel(p.base)
	p.gen++
	p.cancel = cancel
	p.delay = delay

	t := p.newTicker(delay)
	p.logger.Debug("Auto-play armed", "delay", delay, "generation", p.gen)
	go p.loop(ctx, p.gen, t)
}

// disarm must be called with p.mu held.
func (p *Player) disarm() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
	p.logger.Debug("Auto-play disarmed", "generation", p.gen)
}

// finish clears the armed ticker if it still belongs to generation gen.
func (p *Player) finish(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen == gen {
		p.disarm()
	}
}

func (p *Player) loop(ctx context.Context, gen uint64, t Ticker) {
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			if ctx.Err() != nil {
				ack(t)
				return
			}
			if !p.tick(ctx) {
				p.finish(gen)
				ack(t)
				return
			}
			ack(t)
		}
	}
}

func ack(t Ticker) {
	if a, ok := t.(Acker); ok {
		a.Ack()
	}
}

package runner

import (
	"context"
	"log/slog"
)

// Option defines a functional option for configuring the Player.
type Option func(*Player)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		p.logger = logger
	}
}

// WithTickerFactory replaces the ticker source (e.g. a ManualTicker in tests).
func WithTickerFactory(factory TickerFactory) Option {
	return func(p *Player) {
		p.newTicker = factory
	}
}

// WithBaseContext sets the parent context of every armed ticker.
// Cancelling it stops auto-play for good.
func WithBaseContext(ctx context.Context) Option {
	return func(p *Player) {
		p.base = ctx
	}
}

package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/lcsviz/pkg/domain"
)

// Combine merges hook sets; each callback runs the non-nil callbacks of
// every set in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, s := range sets {
		out.OnRecompute = chain(out.OnRecompute, s.OnRecompute)
		out.OnStep = chain(out.OnStep, s.OnStep)
		out.OnReveal = chain(out.OnReveal, s.OnReveal)
		out.OnPlayback = chain(out.OnPlayback, s.OnPlayback)
	}
	return out
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}

// LogHooks returns hooks writing every event to logger at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRecompute: func(ctx context.Context, e *domain.RecomputeEvent) {
			logger.DebugContext(ctx, "recompute", "a", e.A, "b", e.B, "steps", e.Steps, "lcs", e.LCS)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			args := []any{"direction", e.Direction, "cursor", e.Position.Cursor, "auto", e.Auto}
			if e.Fill != nil {
				args = append(args, "i", e.Fill.I, "j", e.Fill.J, "value", e.Fill.Value, "kind", e.Fill.Kind)
			}
			logger.DebugContext(ctx, "step", args...)
		},
		OnReveal: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "path_revealed", "cursor", e.Position.Cursor)
		},
		OnPlayback: func(ctx context.Context, e *domain.PlaybackEvent) {
			logger.DebugContext(ctx, string(e.Type), "playing", e.Position.Playing, "delay", e.Delay)
		},
	}
}

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/lcsviz/internal/config"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/aretw0/lcsviz/pkg/adapters/redis"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports"
	"github.com/muesli/termenv"
)

// DefaultBackoff is the wait between reconnect attempts in watch mode.
const DefaultBackoff = 2 * time.Second

// Watcher renders frames published by another lcsviz process.
type Watcher struct {
	Source   ports.FrameSource
	Renderer *tui.Renderer
	Out      io.Writer
	Logger   *slog.Logger
	Backoff  time.Duration
	// Clear redraws on a clean screen instead of appending.
	Clear bool
}

// Run subscribes to Source and renders every frame until ctx is done.
// A failed or closed subscription is retried after Backoff.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Backoff <= 0 {
		w.Backoff = DefaultBackoff
	}
	for {
		w.watchOnce(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.Backoff):
			w.Logger.Info("Watcher reconnecting")
		}
	}
}

func (w *Watcher) watchOnce(ctx context.Context) {
	frames, release, err := w.Source.Subscribe(ctx)
	if err != nil {
		w.Logger.Error("Subscribe failed", "err", err)
		return
	}
	defer release()
	w.Logger.Debug("Watcher subscribed")

	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-frames:
			if !ok {
				w.Logger.Warn("Frame stream closed")
				return
			}
			w.draw(f)
		}
	}
}

func (w *Watcher) draw(f domain.Frame) {
	out := termenv.NewOutput(w.Out, termenv.WithProfile(w.Renderer.Profile))
	if w.Clear {
		out.ClearScreen()
	}
	_, _ = io.WriteString(out, w.Renderer.Frame(f))
}

// RunWatch follows the Redis channel configured in cfg.
func RunWatch(cfg config.Config, out io.Writer) error {
	logger := CreateLogger(cfg.Debug)
	if out == nil {
		out = os.Stdout
	}

	var ropts []redis.Option
	if cfg.Redis.Channel != "" {
		ropts = append(ropts, redis.WithChannel(cfg.Redis.Channel))
	}
	pub := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ropts...)
	defer pub.Close()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	profile := termenv.NewOutput(out).Profile
	w := &Watcher{
		Source:   pub,
		Renderer: tui.NewRenderer(profile),
		Out:      out,
		Logger:   logger,
		Clear:    true,
	}

	printSystemMessage(out, "Watching '%s' on %s.", pub.Channel(), cfg.Redis.Addr)
	if f, ok, err := pub.Latest(sigCtx); err != nil {
		logger.Warn("Latest frame unavailable", "err", err)
	} else if ok {
		w.draw(f)
	}

	return HandleExecutionError(w.Run(sigCtx))
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/internal/config"
	"github.com/aretw0/lcsviz/pkg/adapters/redis"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports"
)

// Session bundles a configured Visualizer with the publishers it feeds.
type Session struct {
	Viz   *lcsviz.Visualizer
	Redis *redis.Publisher
}

// NewSession builds a Visualizer from cfg. When cfg.Redis.Addr is set,
// every frame is also published to Redis.
func NewSession(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks, sinks ...ports.FrameSink) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{}
	opts := []lcsviz.Option{
		lcsviz.WithLogger(logger),
		lcsviz.WithDelay(cfg.Delay),
		lcsviz.WithNormalizer(lcsviz.NewNormalizer(cfg.MaxLength, cfg.Uppercase)),
		lcsviz.WithLifecycleHooks(hooks),
	}
	for _, sink := range sinks {
		opts = append(opts, lcsviz.WithFrameSink(sink))
	}

	if cfg.Redis.Addr != "" {
		var ropts []redis.Option
		if cfg.Redis.Channel != "" {
			ropts = append(ropts, redis.WithChannel(cfg.Redis.Channel))
		}
		s.Redis = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ropts...)
		opts = append(opts, lcsviz.WithFrameSink(s.Redis))
		logger.Info("Publishing frames to Redis", "addr", cfg.Redis.Addr, "channel", s.Redis.Channel())
	}

	s.Viz = lcsviz.New(cfg.First, cfg.Second, opts...)
	return s, nil
}

// Close stops playback and releases the Redis connection.
func (s *Session) Close() error {
	err := s.Viz.Close()
	if s.Redis != nil {
		if rerr := s.Redis.Close(); rerr != nil && err == nil {
			err = fmt.Errorf("closing redis: %w", rerr)
		}
	}
	return err
}

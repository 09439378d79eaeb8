package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/lcsviz/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel frames are published on.
const DefaultChannel = "lcsviz:frames"

// Publisher implements ports.FrameSink and ports.FrameSource over Redis
// pub/sub. Frames travel as JSON. The latest frame is also kept under a
// key so that late joiners can paint the current state.
type Publisher struct {
	client  *backend.Client
	channel string
	prefix  string
	ttl     time.Duration
}

type Option func(*Publisher)

// WithChannel sets the pub/sub channel.
func WithChannel(channel string) Option {
	return func(p *Publisher) {
		if channel != "" {
			p.channel = channel
		}
	}
}

// WithPrefix sets the key prefix for the latest-frame snapshot.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithTTL sets the expiration of the latest-frame snapshot.
func WithTTL(ttl time.Duration) Option {
	return func(p *Publisher) {
		p.ttl = ttl
	}
}

// New creates a new Redis publisher with options.
func New(address, password string, db int, opts ...Option) *Publisher {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis publisher from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Publisher {
	p := &Publisher{
		client:  client,
		channel: DefaultChannel,
		prefix:  "lcsviz:",
		ttl:     0, // No expiration by default
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Publisher) lastKey() string {
	return p.prefix + "last"
}

// Channel returns the pub/sub channel in use.
func (p *Publisher) Channel() string {
	return p.channel
}

// Publish sends the frame to the channel and refreshes the snapshot.
func (p *Publisher) Publish(ctx context.Context, frame domain.Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}

	pipe := p.client.Pipeline()
	pipe.Set(ctx, p.lastKey(), data, p.ttl)
	pipe.Publish(ctx, p.channel, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish frame %d: %w", frame.Seq, err)
	}
	return nil
}

// Latest returns the last published frame, or false if there is none.
func (p *Publisher) Latest(ctx context.Context) (domain.Frame, bool, error) {
	data, err := p.client.Get(ctx, p.lastKey()).Bytes()
	if errors.Is(err, backend.Nil) {
		return domain.Frame{}, false, nil
	}
	if err != nil {
		return domain.Frame{}, false, fmt.Errorf("failed to load latest frame: %w", err)
	}

	var frame domain.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return domain.Frame{}, false, fmt.Errorf("failed to unmarshal frame: %w", err)
	}
	return frame, true, nil
}

// Subscribe listens on the channel. It returns once the subscription is
// confirmed by the server, so no frame published afterwards is missed.
// Undecodable messages are skipped.
func (p *Publisher) Subscribe(ctx context.Context) (<-chan domain.Frame, func(), error) {
	ps := p.client.Subscribe(ctx, p.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", p.channel, err)
	}

	out := make(chan domain.Frame)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var frame domain.Frame
				if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
					continue
				}
				select {
				case out <- frame:
				case <-ctx.Done():
					return
				case <-stop:
					return
				}
			}
		}
	}()

	var once sync.Once
	release := func() {
		once.Do(func() {
			close(stop)
			<-done
			_ = ps.Close()
		})
	}

	return out, release, nil
}

// Close releases the underlying client.
func (p *Publisher) Close() error {
	return p.client.Close()
}

package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/aretw0/lcsviz/pkg/domain"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Broadcaster implements ports.FrameSink and ports.FrameSource in memory.
// Publish never blocks: a subscriber whose buffer is full misses the frame.
// Safe for concurrent use.
type Broadcaster struct {
	mu      sync.RWMutex
	subs    map[uint64]chan domain.Frame
	next    uint64
	buffer  int
	last    *domain.Frame
	dropped atomic.Uint64
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithBuffer sets the per-subscriber buffer size.
func WithBuffer(n int) Option {
	return func(b *Broadcaster) {
		if n > 0 {
			b.buffer = n
		}
	}
}

// NewBroadcaster creates a Broadcaster without subscribers.
func NewBroadcaster(opts ...Option) *Broadcaster {
	b := &Broadcaster{
		subs:   make(map[uint64]chan domain.Frame),
		buffer: DefaultBuffer,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish fans the frame out to every subscriber.
func (b *Broadcaster) Publish(ctx context.Context, frame domain.Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := frame
	b.last = &f
	for _, ch := range b.subs {
		select {
		case ch <- frame:
		default:
			b.dropped.Add(1)
		}
	}
	return nil
}

// Subscribe registers a new subscriber. The returned release function is
// idempotent; cancelling ctx releases too.
func (b *Broadcaster) Subscribe(ctx context.Context) (<-chan domain.Frame, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan domain.Frame, b.buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	stop := make(chan struct{})
	release := func() {
		once.Do(func() {
			close(stop)
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			release()
		case <-stop:
		}
	}()

	return ch, release, nil
}

// Last returns the most recently published frame.
func (b *Broadcaster) Last() (domain.Frame, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.last == nil {
		return domain.Frame{}, false
	}
	return *b.last, true
}

// Subscribers returns the number of live subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber
// was not keeping up.
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}

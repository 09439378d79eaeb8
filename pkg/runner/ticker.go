package runner

import (
	"sync"
	"time"
)

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Acker is implemented by tickers that want to know when the Player has
// finished handling a tick.
type Acker interface {
	Ack()
}

// TickerFactory creates a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker is the default TickerFactory backed by time.Ticker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// ManualTicker is a Ticker that only fires when told to. Fire returns once
// the tick has been fully handled, which keeps tests free of sleeps.
type ManualTicker struct {
	Delay time.Duration

	ch   chan time.Time
	ack  chan struct{}
	done chan struct{}
	once sync.Once
}

func newManualTicker(d time.Duration) *ManualTicker {
	return &ManualTicker{
		Delay: d,
		ch:    make(chan time.Time),
		ack:   make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Fire delivers one tick and waits until it is handled. It returns false
// if the ticker was stopped before the tick could be delivered.
func (m *ManualTicker) Fire() bool {
	select {
	case m.ch <- time.Now():
	case <-m.done:
		return false
	}
	select {
	case <-m.ack:
	case <-m.done:
	}
	return true
}

// C returns the tick channel.
func (m *ManualTicker) C() <-chan time.Time { return m.ch }

// Ack signals that the last tick was handled.
func (m *ManualTicker) Ack() {
	select {
	case m.ack <- struct{}{}:
	case <-m.done:
	}
}

// Stop stops the ticker; pending and future Fire calls return.
func (m *ManualTicker) Stop() {
	m.once.Do(func() { close(m.done) })
}

// Stopped reports whether Stop was called.
func (m *ManualTicker) Stopped() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// ManualClock hands out ManualTickers and remembers them in creation order.
type ManualClock struct {
	mu      sync.Mutex
	tickers []*ManualTicker
}

// Factory is a TickerFactory producing ManualTickers.
func (c *ManualClock) Factory(d time.Duration) Ticker {
	t := newManualTicker(d)
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Last returns the most recently created ticker, or nil.
func (c *ManualClock) Last() *ManualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tickers) == 0 {
		return nil
	}
	return c.tickers[len(c.tickers)-1]
}

// Count returns how many tickers were created.
func (c *ManualClock) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

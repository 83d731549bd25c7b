package testutils

import (
	"sync"
	"time"
)

// FakeTimeProvider is a manually driven clock. Tickers created by it only
// fire when Advance or Tick is called.
type FakeTimeProvider struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

type fakeTicker struct {
	c       chan time.Time
	stopped bool
}

// NewFakeTimeProvider creates a FakeTimeProvider set to the given time
func NewFakeTimeProvider(now time.Time) *FakeTimeProvider {
	return &FakeTimeProvider{now: now}
}

// Now returns the current fake time
func (p *FakeTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// NewTicker creates a ticker which fires on every call to Advance or Tick.
// The interval is ignored.
func (p *FakeTimeProvider) NewTicker(time.Duration) (<-chan time.Time, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ticker := &fakeTicker{c: make(chan time.Time, 1)}
	p.tickers = append(p.tickers, ticker)

	return ticker.c, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		ticker.stopped = true
	}
}

// Advance moves the clock forward by d and fires all running tickers
func (p *FakeTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
	p.Tick()
}

// Tick fires all running tickers without moving the clock.
// A tick is dropped if the previous one has not been received yet, like time.Ticker does.
func (p *FakeTimeProvider) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ticker := range p.tickers {
		if ticker.stopped {
			continue
		}
		select {
		case ticker.c <- p.now:
		default:
		}
	}
}

// RunningTickers returns the number of tickers which have not been stopped
func (p *FakeTimeProvider) RunningTickers() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	running := 0
	for _, ticker := range p.tickers {
		if !ticker.stopped {
			running++
		}
	}
	return running
}

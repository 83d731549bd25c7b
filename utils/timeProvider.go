package utils

import "time"

// Helper interface to make mocking time.Now() and tickers easier
type TimeProvider interface {
	Now() time.Time
	// NewTicker returns a channel which receives the time every d,
	// along with a function which stops the ticker
	NewTicker(d time.Duration) (<-chan time.Time, func())
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now()
}

func (*timeProvider) NewTicker(d time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(d)
	return ticker.C, ticker.Stop
}

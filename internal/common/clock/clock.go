package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/initiative/internal/common/clock Clock

// Clock stamps tables, characters and log entries
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC
type SystemClock struct{}

// New creates a clock backed by the system time
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in UTC
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}

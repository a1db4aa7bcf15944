// Package clock abstracts time for code that sleeps between retries.
package clock

import (
	"time"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Clock is an interface that abstracts the functionality for measuring time.
type Clock interface {
	// Sleep pauses the current goroutine for at least the duration d. A negative or zero duration causes Sleep to return immediately.
	Sleep(duration time.Duration)
	// After waits for the duration to elapse and then sends the current time on the returned channel.
	After(duration time.Duration) <-chan time.Time
	// Now returns the current wall-clock time.
	Now() time.Time
}

type clock struct{}

// New creates a new instance of Clock.
func New() Clock {
	return clock{}
}

func (clock) Sleep(duration time.Duration) {
	time.Sleep(duration)
}

func (clock) After(duration time.Duration) <-chan time.Time {
	return time.After(duration)
}

func (clock) Now() time.Time {
	return time.Now()
}

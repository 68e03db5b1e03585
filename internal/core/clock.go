package core

import "time"

// Clock is the host's notion of time. Simulations read it instead of
// calling time.Now so that tests can drive timed transitions by hand.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

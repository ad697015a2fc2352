package clock

import "time"

// Clock provides the current time. Services take a Clock so tests can pin "today".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns the wall clock.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

// Package clock abstracts time so sync bookkeeping is testable
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/hatchforge/brood-api/internal/pkg/clock Clock

// Clock yields the current time. Repositories take one instead of
// calling time.Now so tests can pin the sync timestamp.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current system time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a system-clock backed Clock
func New() Clock {
	return &Real{}
}

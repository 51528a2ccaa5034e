package time

import (
	"time"

	"github.com/amirhossein-jamali/studrev/internal/domain/port/core"
)

// RealTimeProvider reads the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// FixedTimeProvider always reports the same instant
type FixedTimeProvider struct {
	At time.Time
}

// Now returns the pinned instant
func (p FixedTimeProvider) Now() time.Time {
	return p.At
}

// Since measures from the pinned instant
func (p FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.At.Sub(t))
}

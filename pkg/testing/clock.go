package testing

import (
	"sync"
	"time"

	"github.com/go-drift/snapstep/pkg/animation"
)

// FakeClock provides controllable time for deterministic autorepeat and
// snap tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Install makes c the animation clock and returns a function restoring the
// previous one.
func (c *FakeClock) Install() (restore func()) {
	prev := animation.SetClock(c)
	return func() {
		animation.SetClock(prev)
	}
}

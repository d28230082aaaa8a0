// Package clock provides the monotonic per-client timestamps attached to
// queued changes. Wall time alone is not monotonic (NTP steps, coarse timer
// resolution), so the clock never hands out a value twice.
package clock

import (
	"sync"
	"time"
)

// Monotonic issues strictly increasing unix-millisecond timestamps. It
// follows wall time when wall time moves forward and increments by one
// otherwise.
type Monotonic struct {
	now  func() time.Time
	last int64
	mu   sync.Mutex
}

// New creates a clock backed by time.Now.
func New() *Monotonic {
	return &Monotonic{now: time.Now}
}

// NewWithNow creates a clock with an injected time source for tests.
func NewWithNow(now func() time.Time) *Monotonic {
	return &Monotonic{now: now}
}

// Next returns the next timestamp, always greater than every previously
// returned value.
func (c *Monotonic) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	return ts
}

// Observe advances the clock past a timestamp seen elsewhere (for example a
// change restored from the durable queue) so subsequent local timestamps stay
// ahead of it.
func (c *Monotonic) Observe(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts > c.last {
		c.last = ts
	}
}

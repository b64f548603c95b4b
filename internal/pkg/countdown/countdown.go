// Package countdown derives whole remaining seconds from fixed instants and
// samples them on a wall-clock period rather than on every render.
package countdown

import (
	"context"
	"sync"
	"time"

	"mysterybox-storefront/internal/pkg/clock"
)

const (
	// FastPeriod drives short windows (flash offer, try-now) where sub-second drift is visible.
	FastPeriod = 100 * time.Millisecond
	// SlowPeriod drives banner timers and the flash-offer refresh poll.
	SlowPeriod = time.Second
	// SettingsPeriod drives the challenge-settings refresh poll.
	SettingsPeriod = 5 * time.Second
)

// Remaining returns max(0, floor((target - now) / 1s)).
func Remaining(target, now time.Time) int {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}

// RemainingSince returns max(0, durationSeconds - floor((now - start) / 1s)).
// A clock that reads earlier than start counts as zero elapsed.
func RemainingSince(start time.Time, durationSeconds int, now time.Time) int {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	left := durationSeconds - int(elapsed/time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// Countdown clamps successive samples of Remaining so that a clock stepping
// backwards never makes the displayed value grow.
type Countdown struct {
	mu      sync.Mutex
	target  time.Time
	last    int
	sampled bool
}

func New(target time.Time) *Countdown {
	return &Countdown{target: target}
}

func (c *Countdown) Target() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Retarget moves the end instant (e.g. after a server refresh) and forgets the clamp.
func (c *Countdown) Retarget(target time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !target.Equal(c.target) {
		c.target = target
		c.sampled = false
	}
}

func (c *Countdown) Sample(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := Remaining(c.target, now)
	if c.sampled && r > c.last {
		r = c.last
	}
	c.last = r
	c.sampled = true
	return r
}

// Run invokes fn with clk.Now() every period until ctx is cancelled.
// The ticker is always stopped on return.
func Run(ctx context.Context, period time.Duration, clk clock.Clock, fn func(now time.Time)) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	fn(clk.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fn(clk.Now())
		}
	}
}

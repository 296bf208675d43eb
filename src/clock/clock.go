// Package clock converts speed levels into tick intervals and drains accumulated
// real time into discrete simulation ticks.
package clock

import "time"

// DefaultIntervals is the tick interval for speed levels 1..5. Level 0 is paused and
// the level past the table is uncapped.
var DefaultIntervals = []time.Duration{
	1000 * time.Millisecond,
	500 * time.Millisecond,
	250 * time.Millisecond,
	100 * time.Millisecond,
	10 * time.Millisecond,
}

// Stepper advances the simulation by one tick.
type Stepper interface {
	NextTick()
}

// Clock is a fixed timestep controller with unbounded catch-up.
type Clock struct {
	intervals []time.Duration
	lag       time.Duration
	last      time.Time
	now       func() time.Time
}

// New constructs a Clock for the given interval table.
func New(intervals []time.Duration) *Clock {
	table := make([]time.Duration, len(intervals))
	copy(table, intervals)
	return &Clock{intervals: table, now: time.Now}
}

// NewDefault constructs a Clock with DefaultIntervals.
func NewDefault() *Clock {
	return New(DefaultIntervals)
}

// setNow replaces the wall clock source.
func (c *Clock) setNow(now func() time.Time) {
	c.now = now
	c.last = time.Time{}
}

// Levels returns the number of speed levels including pause and uncapped.
func (c *Clock) Levels() int {
	return len(c.intervals) + 2
}

// Interval returns the tick interval for speed. capped is false for the paused
// and the uncapped levels.
func (c *Clock) Interval(speed int) (d time.Duration, capped bool) {
	if speed <= 0 || speed > len(c.intervals) {
		return 0, false
	}
	return c.intervals[speed-1], true
}

// Paused reports whether speed stops the simulation.
func (c *Clock) Paused(speed int) bool {
	return speed <= 0
}

// Lag returns the real time not yet consumed by ticks.
func (c *Clock) Lag() time.Duration {
	return c.lag
}

// Advance adds delta to the lag accumulator and runs every tick that became due.
// There is no upper bound on the number of ticks in one call. Returns the number
// of ticks executed.
func (c *Clock) Advance(delta time.Duration, speed int, s Stepper) int {
	if c.Paused(speed) {
		c.lag = 0
		return 0
	}
	interval, capped := c.Interval(speed)
	if !capped {
		// uncapped: one tick per loop iteration
		c.lag = 0
		s.NextTick()
		return 1
	}
	if delta > 0 {
		c.lag += delta
	}
	ticks := int(c.lag / interval)
	for i := 0; i < ticks; i++ {
		s.NextTick()
	}
	c.lag -= time.Duration(ticks) * interval
	return ticks
}

// Frame measures the wall clock time since the previous Frame and advances by it.
// The first call measures zero.
func (c *Clock) Frame(speed int, s Stepper) int {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	return c.Advance(delta, speed, s)
}

// Until returns the time left before the next tick is due: zero when uncapped,
// -1 when paused.
func (c *Clock) Until(speed int) time.Duration {
	if c.Paused(speed) {
		return -1
	}
	interval, capped := c.Interval(speed)
	if !capped {
		return 0
	}
	if left := interval - c.lag; left > 0 {
		return left
	}
	return 0
}

// Package timer implements the countdown clock behind a session phase.
package timer

import (
	"fmt"
	"math"
	"time"
)

// Timer counts down toward zero and keeps counting into negative
// overtime once it gets there. It never advances on its own: Advance
// applies the wall-clock time elapsed since the last Tick, and Tick
// re-bases that window so paused time is never counted.
type Timer struct {
	remaining float64 // seconds, negative once past the target
	lastTick  time.Time
	notified  bool
	now       func() time.Time
}

// New creates a timer with d left on the clock.
func New(d time.Duration) *Timer {
	return NewWithClock(d, time.Now)
}

// NewWithClock creates a timer that reads time from now instead of
// time.Now. Tests use this to control elapsed time exactly.
func NewWithClock(d time.Duration, now func() time.Time) *Timer {
	return &Timer{
		remaining: d.Seconds(),
		lastTick:  now(),
		now:       now,
	}
}

// Remaining reports the seconds left on the clock; negative means
// overtime.
func (t *Timer) Remaining() float64 {
	return t.remaining
}

// Notified reports whether the zero-crossing has already fired for
// this timer.
func (t *Timer) Notified() bool {
	return t.notified
}

// Tick re-bases the elapsed-time window at the current instant without
// touching the remaining time. It runs once per render cycle whether
// the clock is advancing or not, so a paused timer never accrues
// elapsed time.
func (t *Timer) Tick() {
	t.lastTick = t.now()
}

// Advance subtracts the time elapsed since the last Tick from the
// remaining seconds. It reports true exactly once per timer, on the
// call where the clock crosses from non-negative to negative. Advance
// does not re-base the window; callers run Tick separately after
// rendering.
func (t *Timer) Advance() bool {
	delta := t.now().Sub(t.lastTick).Seconds()
	before := t.remaining
	t.remaining -= delta
	if before >= 0 && t.remaining < 0 && !t.notified {
		t.notified = true
		return true
	}
	return false
}

// Adjust moves the clock by the given number of seconds, in either
// direction, without bounds. Moving back above zero does not re-arm
// the zero-crossing notification.
func (t *Timer) Adjust(seconds float64) {
	t.remaining += seconds
}

// String renders the remaining time for the status line.
func (t *Timer) String() string {
	return FormatSeconds(t.remaining)
}

// FormatSeconds renders a signed seconds value as [D:][HH:]MM:SS.
// Hours appear from one hour up, days from one day up (hours are then
// always shown), and a leading minus marks overtime.
func FormatSeconds(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
	}
	total := int(math.Abs(seconds))
	days := total / 86400
	hours := total % 86400 / 3600
	mins := total % 3600 / 60
	secs := total % 60

	switch {
	case days >= 1:
		return fmt.Sprintf("%s%d:%02d:%02d:%02d", sign, days, hours, mins, secs)
	case hours >= 1:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, mins, secs)
	default:
		return fmt.Sprintf("%s%02d:%02d", sign, mins, secs)
	}
}

package timer

import (
	"testing"
	"time"
)

// fakeClock lets tests control elapsed time exactly.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestNew(t *testing.T) {
	tr := New(90 * time.Second)
	if tr.Remaining() != 90 {
		t.Errorf("Remaining() = %v, want 90", tr.Remaining())
	}
	if tr.Notified() {
		t.Error("Notified() = true for a fresh timer, want false")
	}
}

func TestAdvance_CountsElapsedTime(t *testing.T) {
	clock := newFakeClock()
	tr := NewWithClock(10*time.Second, clock.now)

	clock.advance(3 * time.Second)
	if fired := tr.Advance(); fired {
		t.Error("Advance() fired with 7s left, want no notification")
	}
	if tr.Remaining() != 7 {
		t.Errorf("Remaining() = %v after 3s elapsed, want 7", tr.Remaining())
	}
}

func TestAdvanceThenTick_NoElapsedTime(t *testing.T) {
	clock := newFakeClock()
	tr := NewWithClock(10*time.Second, clock.now)

	tr.Advance()
	tr.Tick()
	if tr.Remaining() != 10 {
		t.Errorf("Remaining() = %v with zero elapsed time, want 10", tr.Remaining())
	}
}

func TestTick_RebasesElapsedWindow(t *testing.T) {
	clock := newFakeClock()
	tr := NewWithClock(10*time.Second, clock.now)

	// Time that passes before a Tick must not count.
	clock.advance(5 * time.Second)
	tr.Tick()
	clock.advance(1 * time.Second)
	tr.Advance()

	if tr.Remaining() != 9 {
		t.Errorf("Remaining() = %v, want 9 (paused 5s must not count)", tr.Remaining())
	}
}

func TestAdvance_ZeroCrossingFiresOnce(t *testing.T) {
	clock := newFakeClock()
	tr := NewWithClock(1*time.Second, clock.now)

	clock.advance(2 * time.Second)
	if fired := tr.Advance(); !fired {
		t.Fatal("Advance() did not fire on zero-crossing")
	}
	if !tr.Notified() {
		t.Error("Notified() = false after crossing, want true")
	}

	tr.Tick()
	clock.advance(1 * time.Second)
	if fired := tr.Advance(); fired {
		t.Error("Advance() fired a second time while in overtime")
	}
}

func TestAdjust_DoesNotRearmNotification(t *testing.T) {
	clock := newFakeClock()
	tr := NewWithClock(1*time.Second, clock.now)

	clock.advance(2 * time.Second)
	tr.Advance()
	tr.Tick()

	// Push the clock back above zero, then let it cross again.
	tr.Adjust(100)
	clock.advance(200 * time.Second)
	if fired := tr.Advance(); fired {
		t.Error("Advance() fired again after a manual adjustment, want at most one notification per timer")
	}
}

func TestAdjust_MovesClockBothWays(t *testing.T) {
	clock := newFakeClock()
	tr := NewWithClock(10*time.Second, clock.now)

	tr.Adjust(60)
	if tr.Remaining() != 70 {
		t.Errorf("Remaining() = %v after +60, want 70", tr.Remaining())
	}
	tr.Adjust(-100)
	if tr.Remaining() != -30 {
		t.Errorf("Remaining() = %v after -100, want -30", tr.Remaining())
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{125, "02:05"},
		{-5, "-00:05"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{-3661, "-01:01:01"},
		{86400, "1:00:00:00"},
		{90000, "1:01:00:00"},
		{-90000, "-1:01:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSeconds(tt.seconds); got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

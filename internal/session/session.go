// Package session implements the work/break state machine the display
// process mutates. All mutation happens on the listener loop's single
// goroutine, one command per cycle, so the session carries no lock.
package session

import (
	"fmt"
	"time"

	"github.com/pomobar/pomobar/internal/notify"
	"github.com/pomobar/pomobar/internal/protocol"
	"github.com/pomobar/pomobar/internal/timer"
)

// Phase is the current session kind.
type Phase int

const (
	Work Phase = iota
	Break
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "work"
}

// Glyphs are the status-line markers for each phase. Paused, when
// non-empty, is appended while the clock is not running.
type Glyphs struct {
	Work   string
	Break  string
	Paused string
}

// Message is the notification text posted when a phase runs out.
type Message struct {
	Summary string
	Body    string
}

// Config carries everything a session needs at construction. Nil
// Notifier means notifications are dropped; nil Now means time.Now.
type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	Glyphs        Glyphs
	WorkDone      Message
	BreakDone     Message
	Notifier      notify.Notifier
	Now           func() time.Time
}

// Session tracks the phase, the live timer, and the flags commands
// flip. It starts in the work phase, paused and locked, so a stray
// scroll cannot reshape the clock before the operator unlocks it.
// Exactly one timer is alive at a time; finishing a phase replaces it.
type Session struct {
	phase  Phase
	timer  *timer.Timer
	active bool
	locked bool

	cfg Config
}

// New constructs the single session instance for a display process.
func New(cfg Config) *Session {
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Discard{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Session{
		phase:  Work,
		timer:  timer.NewWithClock(cfg.WorkDuration, cfg.Now),
		locked: true,
		cfg:    cfg,
	}
}

// Phase reports the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Active reports whether the clock is currently advancing.
func (s *Session) Active() bool { return s.active }

// Locked reports whether time adjustments are rejected.
func (s *Session) Locked() bool { return s.locked }

// Timer exposes the live timer.
func (s *Session) Timer() *timer.Timer { return s.timer }

// ToggleActive starts or pauses the clock.
func (s *Session) ToggleActive() {
	s.active = !s.active
}

// ToggleLock flips whether time adjustments are accepted.
func (s *Session) ToggleLock() {
	s.locked = !s.locked
}

// AdvanceTime is the per-cycle clock update. While active it applies
// the elapsed time and fires the phase notification on the cycle where
// the clock crosses zero. The trailing Tick runs unconditionally so
// the next elapsed-time window excludes paused duration.
func (s *Session) AdvanceTime() {
	if s.active {
		if s.timer.Advance() {
			msg := s.cfg.WorkDone
			if s.phase == Break {
				msg = s.cfg.BreakDone
			}
			// Best effort; a missing notification service changes nothing.
			_ = s.cfg.Notifier.Notify(msg.Summary, msg.Body)
		}
	}
	s.timer.Tick()
}

// CompletePhase finishes the current phase and swaps in a fresh timer
// for the next one. The new phase always starts paused.
func (s *Session) CompletePhase() {
	s.active = false
	if s.phase == Work {
		s.phase = Break
		s.timer = timer.NewWithClock(s.cfg.BreakDuration, s.cfg.Now)
	} else {
		s.phase = Work
		s.timer = timer.NewWithClock(s.cfg.WorkDuration, s.cfg.Now)
	}
}

// AdjustTime moves the clock by amount seconds in dir. While locked it
// is a no-op.
func (s *Session) AdjustTime(dir protocol.Direction, amount int) {
	if s.locked {
		return
	}
	seconds := float64(amount)
	if dir == protocol.Subtract {
		seconds = -seconds
	}
	s.timer.Adjust(seconds)
}

// Apply dispatches one decoded command against the session.
func (s *Session) Apply(cmd protocol.Command) error {
	switch cmd.Kind {
	case protocol.Toggle:
		s.ToggleActive()
	case protocol.Complete:
		s.CompletePhase()
	case protocol.ToggleLock:
		s.ToggleLock()
	case protocol.AdjustTime:
		s.AdjustTime(cmd.Dir, cmd.Amount)
	default:
		return fmt.Errorf("unhandled command kind %d", cmd.Kind)
	}
	return nil
}

// Render produces the status line: the phase marker, the formatted
// remaining time, and the paused marker while the clock is stopped.
func (s *Session) Render() string {
	marker := s.cfg.Glyphs.Work
	if s.phase == Break {
		marker = s.cfg.Glyphs.Break
	}
	line := fmt.Sprintf("%s %s", marker, s.timer)
	if !s.active && s.cfg.Glyphs.Paused != "" {
		line += " " + s.cfg.Glyphs.Paused
	}
	return line
}

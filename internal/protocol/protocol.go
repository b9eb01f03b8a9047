// Package protocol defines the textual command grammar exchanged over
// the control socket between the display process and one-shot clients.
//
// Each datagram carries exactly one message; datagram semantics
// preserve message boundaries, so there is no framing. The grammar:
//
//	toggle            start or pause the clock
//	end               finish the current phase
//	lock              toggle the time-adjustment lock
//	time <op> <n>     move the clock, op is "add" or "sub", n is digits
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxMessageSize bounds a single datagram. The grammar never comes
// close; readers size their receive buffers with it.
const MaxMessageSize = 1024

// Kind identifies a decoded command.
type Kind int

const (
	// Toggle flips the session between running and paused.
	Toggle Kind = iota + 1
	// Complete finishes the current phase and starts the next one.
	Complete
	// ToggleLock flips whether time adjustments are accepted.
	ToggleLock
	// AdjustTime moves the clock by Amount seconds in Dir.
	AdjustTime
)

// Direction says which way AdjustTime moves the clock.
type Direction int

const (
	Add Direction = iota + 1
	Subtract
)

// Command is one decoded instruction. Dir and Amount are only
// meaningful for AdjustTime; Amount is always non-negative.
type Command struct {
	Kind   Kind
	Dir    Direction
	Amount int
}

const (
	msgToggle = "toggle"
	msgEnd    = "end"
	msgLock   = "lock"
	msgTime   = "time"
	opAdd     = "add"
	opSub     = "sub"
)

// Encode renders a command in wire form.
func Encode(c Command) (string, error) {
	switch c.Kind {
	case Toggle:
		return msgToggle, nil
	case Complete:
		return msgEnd, nil
	case ToggleLock:
		return msgLock, nil
	case AdjustTime:
		if c.Amount < 0 {
			return "", fmt.Errorf("adjust amount must be non-negative, got %d", c.Amount)
		}
		switch c.Dir {
		case Add:
			return fmt.Sprintf("%s %s %d", msgTime, opAdd, c.Amount), nil
		case Subtract:
			return fmt.Sprintf("%s %s %d", msgTime, opSub, c.Amount), nil
		default:
			return "", fmt.Errorf("unknown adjust direction %d", c.Dir)
		}
	default:
		return "", fmt.Errorf("unknown command kind %d", c.Kind)
	}
}

// Decode parses one received datagram into a Command. The channel has
// no schema enforcement, so everything is re-validated here; a decode
// error means the message must be discarded without touching any
// state.
func Decode(data []byte) (Command, error) {
	msg := strings.TrimSpace(string(data))
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty message")
	}

	switch fields[0] {
	case msgToggle:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("unexpected arguments in %q", msg)
		}
		return Command{Kind: Toggle}, nil
	case msgEnd:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("unexpected arguments in %q", msg)
		}
		return Command{Kind: Complete}, nil
	case msgLock:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("unexpected arguments in %q", msg)
		}
		return Command{Kind: ToggleLock}, nil
	case msgTime:
		return decodeTime(msg, fields)
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func decodeTime(msg string, fields []string) (Command, error) {
	if len(fields) != 3 {
		return Command{}, fmt.Errorf("malformed time command %q: want 3 fields, got %d", msg, len(fields))
	}

	var dir Direction
	switch fields[1] {
	case opAdd:
		dir = Add
	case opSub:
		dir = Subtract
	default:
		return Command{}, fmt.Errorf("malformed time command %q: unknown op %q", msg, fields[1])
	}

	if !isDigits(fields[2]) {
		return Command{}, fmt.Errorf("malformed time command %q: amount must be digits", msg)
	}
	amount, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("malformed time command %q: %w", msg, err)
	}

	return Command{Kind: AdjustTime, Dir: dir, Amount: amount}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

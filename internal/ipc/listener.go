package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/pomobar/pomobar/internal/protocol"
	"github.com/pomobar/pomobar/internal/session"
)

// Listener binds the well-known endpoint and runs the display loop.
// Every cycle renders one status line, advances the clock, and waits
// at most one window for a single incoming command; further datagrams
// stay queued for later cycles, which keeps session mutation strictly
// sequential.
type Listener struct {
	conn   *net.UnixConn
	path   string
	window time.Duration
	out    io.Writer
	errOut io.Writer
	buf    [protocol.MaxMessageSize]byte
}

// Listen binds a fresh unixgram socket at path, removing any stale
// file left by a previous instance first. The most recently started
// display wins the endpoint; an older instance silently loses it.
func Listen(path string, window time.Duration) (*Listener, error) {
	// Best effort; a failed removal surfaces through the bind below.
	_ = os.Remove(path)

	addr, err := net.ResolveUnixAddr("unixgram", path)
	if err != nil {
		return nil, fmt.Errorf("resolve socket address %s: %w", path, err)
	}
	conn, err := net.ListenUnixgram("unixgram", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", path, err)
	}

	return &Listener{
		conn:   conn,
		path:   path,
		window: window,
		out:    os.Stdout,
		errOut: os.Stderr,
	}, nil
}

// SetOutput redirects the render sink and the error sink. Tests use
// this; the defaults are stdout and stderr.
func (l *Listener) SetOutput(out, errOut io.Writer) {
	l.out = out
	l.errOut = errOut
}

// Close releases the endpoint and removes its file so the next
// instance can bind without stepping on a stale socket.
func (l *Listener) Close() error {
	err := l.conn.Close()
	if rmErr := os.Remove(l.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}

// Run drives the session until ctx is done. The read deadline inside
// Cycle is the loop's only blocking point, so cancellation takes
// effect within one window.
func (l *Listener) Run(ctx context.Context, sess *session.Session) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := l.Cycle(sess); err != nil {
			return err
		}
	}
}

// Cycle performs one iteration of the display loop in the required
// order: render, advance, then drain at most one pending command.
// Recoverable conditions (timeouts, transient read errors, malformed
// messages) never escape; they are logged and the loop carries on with
// the session untouched.
func (l *Listener) Cycle(sess *session.Session) error {
	fmt.Fprintln(l.out, sess.Render())
	sess.AdvanceTime()

	if err := l.conn.SetReadDeadline(time.Now().Add(l.window)); err != nil {
		return fmt.Errorf("set read deadline: %w", err)
	}
	n, _, err := l.conn.ReadFromUnix(l.buf[:])
	if err != nil {
		switch {
		case errors.Is(err, os.ErrDeadlineExceeded):
			// Nothing arrived this window.
		case errors.Is(err, net.ErrClosed):
			return err
		default:
			fmt.Fprintf(l.errOut, "socket read: %v\n", err)
		}
		return nil
	}

	cmd, err := protocol.Decode(l.buf[:n])
	if err != nil {
		fmt.Fprintf(l.errOut, "ignoring message: %v\n", err)
		return nil
	}
	if err := sess.Apply(cmd); err != nil {
		fmt.Fprintf(l.errOut, "apply command: %v\n", err)
	}
	return nil
}

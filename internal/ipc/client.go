package ipc

import (
	"fmt"
	"net"

	"github.com/pomobar/pomobar/internal/protocol"
)

// Send encodes cmd and delivers it to the display listening at path,
// then releases the ephemeral endpoint. There is no acknowledgment and
// no retry: a missing listener is reported to the caller and the
// command is simply dropped.
func Send(path string, cmd protocol.Command) error {
	msg, err := protocol.Encode(cmd)
	if err != nil {
		return err
	}

	raddr, err := net.ResolveUnixAddr("unixgram", path)
	if err != nil {
		return fmt.Errorf("resolve socket address %s: %w", path, err)
	}
	conn, err := net.DialUnix("unixgram", nil, raddr)
	if err != nil {
		return fmt.Errorf("no display listening at %s: %w", path, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(msg)); err != nil {
		return fmt.Errorf("send %q: %w", msg, err)
	}
	return nil
}

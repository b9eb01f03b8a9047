// Package ipc owns the unix datagram channel between the display
// process and one-shot clients. The socket path is the entire address
// space: filesystem permissions on the runtime directory are the only
// access control.
package ipc

import (
	"os"
	"path/filepath"
)

// SocketName is the well-known endpoint file name inside the runtime
// directory.
const SocketName = "pomobar.sock"

// SocketPath resolves the well-known endpoint: $XDG_RUNTIME_DIR when
// set, the system temp directory otherwise.
func SocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, SocketName)
	}
	return filepath.Join(os.TempDir(), SocketName)
}

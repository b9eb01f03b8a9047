// Package notify delivers best-effort desktop notifications.
package notify

import (
	"context"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/pomobar/pomobar/pkg/shell"
)

// Notifier posts a single desktop notification. Delivery is
// fire-and-forget: the returned error is advisory and callers are
// expected to drop it.
type Notifier interface {
	Notify(summary, body string) error
}

// Discard drops every notification. It stands in when notifications
// are disabled and as the stub in tests.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(summary, body string) error {
	return nil
}

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications.Notify"

	execTimeout = 5 * time.Second
)

// Desktop posts notifications over the D-Bus session bus, shelling out
// to notify-send when no bus is reachable. A missing notification
// service is tolerated on both paths.
type Desktop struct {
	AppName string
	Runner  shell.Runner
}

// NewDesktop creates a Desktop notifier with the default runner.
func NewDesktop(appName string) *Desktop {
	return &Desktop{AppName: appName, Runner: shell.NewRunner()}
}

// Notify posts one transient notification.
func (d *Desktop) Notify(summary, body string) error {
	if err := d.notifyBus(summary, body); err == nil {
		return nil
	}
	return d.notifySend(summary, body)
}

func (d *Desktop) notifyBus(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}
	obj := conn.Object(notifyService, notifyPath)
	// Args: app_name, replaces_id, app_icon, summary, body, actions,
	// hints, expire_timeout (-1 means the server default).
	call := obj.Call(notifyInterface, 0,
		d.AppName, uint32(0), "", summary, body,
		[]string{}, map[string]dbus.Variant{}, int32(-1))
	return call.Err
}

func (d *Desktop) notifySend(summary, body string) error {
	runner := d.Runner
	if runner == nil {
		runner = shell.NewRunner()
	}
	ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
	defer cancel()
	_, err := runner.Run(ctx, "notify-send", "--app-name", d.AppName, summary, body)
	return err
}

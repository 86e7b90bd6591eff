//go:build linux

package platform

import (
	"github.com/godbus/dbus/v5"
)

// expiryMs is how long the server should keep the notification visible.
const expiryMs = 5000

// Notify sends one notification over the session bus, per the
// org.freedesktop.Notifications spec.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		appName, uint32(0), opts.IconPath, title, body, []string{}, map[string]dbus.Variant{}, int32(expiryMs))
	return call.Err
}

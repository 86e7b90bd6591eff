// Package platform sends desktop notifications through whatever facility
// the host OS provides: the freedesktop D-Bus service on Linux,
// Notification Center on macOS, toast notifications on Windows. On
// anything else notifications silently do nothing.
package platform

// appName identifies the sender to the host notification service.
const appName = "VecDraw"

// Options configures how a notification is displayed.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification
	// service should show alongside the text, where supported.
	IconPath string
}

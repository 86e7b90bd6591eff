//go:build !linux && !darwin && !windows

package platform

// Notify discards the notification on platforms without a backend.
func Notify(title, body string, opts Options) error {
	return nil
}

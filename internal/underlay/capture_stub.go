//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package underlay

import (
	"context"
	"fmt"
	"image"
)

// Capture is only available where a Freedesktop screenshot portal runs.
func Capture(context.Context) (*image.RGBA, error) {
	return nil, fmt.Errorf("screen capture is not supported on this platform")
}

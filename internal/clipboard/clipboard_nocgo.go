//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
	"sync"
)

// The display-server backend needs cgo. A pure-Go build still resolves the
// session state so callers get the more specific error when one applies.
var (
	initOnce sync.Once
	initErr  error
	errNoCGO = errors.New("clipboard support requires a cgo-enabled build")
)

func ensureInit() error {
	initOnce.Do(func() {
		if !displayAvailable() {
			initErr = errNoDisplay
			return
		}
		initErr = errNoCGO
	})
	return initErr
}

func writeImage(image.Image) error { return ensureInit() }

func readImage() (image.Image, error) { return nil, ensureInit() }

func writeText(string) error { return ensureInit() }

func readText() (string, error) { return "", ensureInit() }

//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// ensureInit connects to the display server once per process. The first
// failure is cached; a session that starts headless stays headless.
func ensureInit() error {
	initOnce.Do(func() {
		if !displayAvailable() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

func read(format clipboard.Format, what string) ([]byte, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data := clipboard.Read(format)
	if len(data) == 0 {
		return nil, fmt.Errorf("clipboard does not contain %s data", what)
	}
	return data, nil
}

func writeImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}

func readImage() (image.Image, error) {
	data, err := read(clipboard.FmtImage, "image")
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(data))
}

func writeText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func readText() (string, error) {
	data, err := read(clipboard.FmtText, "text")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

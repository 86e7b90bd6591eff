//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard is not supported on this platform")

func writeImage(image.Image) error { return errUnsupported }

func readImage() (image.Image, error) { return nil, errUnsupported }

func writeText(string) error { return errUnsupported }

func readText() (string, error) { return "", errUnsupported }

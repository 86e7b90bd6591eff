// Package clipboard moves images and text between vecdraw and the system
// clipboard. Drawings leave as PNG data and tracing backgrounds arrive the
// same way; the platform files pick the transfer mechanism at build time.
package clipboard

import "image"

// WriteImage publishes img to the clipboard as PNG data.
func WriteImage(img image.Image) error { return writeImage(img) }

// ReadImage decodes PNG data held on the clipboard.
func ReadImage() (image.Image, error) { return readImage() }

// WriteText publishes UTF-8 text to the clipboard.
func WriteText(text string) error { return writeText(text) }

// ReadText returns UTF-8 text held on the clipboard.
func ReadText() (string, error) { return readText() }

package theme

import (
	"image/color"
)

// Theme defines the color palette for the editor window and canvas.
type Theme struct {
	Name string

	// General
	Background color.RGBA // window background behind the canvas
	Foreground color.RGBA // chrome text

	// Canvas
	CanvasBackground color.RGBA
	DefaultStroke    color.RGBA // stroke color new sessions start with

	// Editing decorations
	Selection  color.RGBA // selection outlines and handle borders
	HandleFill color.RGBA
	SnapMarker color.RGBA
	Preview    color.RGBA

	// Status strip
	StatusBackground color.RGBA
	StatusText       color.RGBA
}

// Default returns the hardcoded light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "default",
		Background:       color.RGBA{220, 220, 220, 255},
		Foreground:       color.RGBA{0, 0, 0, 255},
		CanvasBackground: color.RGBA{255, 255, 255, 255},
		DefaultStroke:    color.RGBA{0, 0, 0, 255},
		Selection:        color.RGBA{0, 0, 255, 255},
		HandleFill:       color.RGBA{255, 255, 255, 255},
		SnapMarker:       color.RGBA{255, 0, 0, 255},
		Preview:          color.RGBA{128, 128, 128, 255},
		StatusBackground: color.RGBA{220, 220, 220, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:             "dark",
		Background:       color.RGBA{30, 30, 30, 255},
		Foreground:       color.RGBA{230, 230, 230, 255},
		CanvasBackground: color.RGBA{40, 40, 40, 255},
		DefaultStroke:    color.RGBA{230, 230, 230, 255},
		Selection:        color.RGBA{100, 160, 255, 255},
		HandleFill:       color.RGBA{30, 30, 30, 255},
		SnapMarker:       color.RGBA{255, 90, 90, 255},
		Preview:          color.RGBA{140, 140, 140, 255},
		StatusBackground: color.RGBA{45, 45, 45, 255},
		StatusText:       color.RGBA{230, 230, 230, 255},
	}
}

// HighContrast returns the built-in high-contrast theme.
func HighContrast() *Theme {
	return &Theme{
		Name:             "high_contrast",
		Background:       color.RGBA{0, 0, 0, 255},
		Foreground:       color.RGBA{255, 255, 255, 255},
		CanvasBackground: color.RGBA{0, 0, 0, 255},
		DefaultStroke:    color.RGBA{255, 255, 255, 255},
		Selection:        color.RGBA{255, 255, 0, 255},
		HandleFill:       color.RGBA{0, 0, 0, 255},
		SnapMarker:       color.RGBA{255, 0, 255, 255},
		Preview:          color.RGBA{0, 255, 255, 255},
		StatusBackground: color.RGBA{0, 0, 0, 255},
		StatusText:       color.RGBA{255, 255, 255, 255},
	}
}

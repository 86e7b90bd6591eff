package main

import (
	"context"
	"flag"
	"fmt"
	"image"

	"github.com/example/vecdraw/internal/app"
	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/theme"
	"github.com/example/vecdraw/internal/underlay"
)

// captureFn is swappable so command tests can run without a desktop portal.
var captureFn = underlay.Capture

// editCmd opens the interactive drawing window.
type editCmd struct {
	output     string
	background string
	capture    bool
	width      int
	height     int
	colorSpec  string
	stroke     int
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.output, "output", "drawing.png", "PNG file Ctrl+S writes")
	fs.StringVar(&e.background, "background", "", "image file to trace over")
	fs.BoolVar(&e.capture, "capture", false, "capture the screen and trace over it")
	fs.IntVar(&e.width, "width", 1024, "canvas width in pixels")
	fs.IntVar(&e.height, "height", 768, "canvas height in pixels")
	fs.StringVar(&e.colorSpec, "color", "", "starting stroke color name or hex value")
	fs.IntVar(&e.stroke, "stroke-width", 0, "starting stroke width in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: e}
	}
	if e.background != "" && e.capture {
		return nil, fmt.Errorf("-background and -capture cannot be combined")
	}
	if e.colorSpec != "" {
		if err := validColor(e.colorSpec); err != nil {
			return nil, err
		}
	}
	if e.width < 1 || e.height < 1 {
		return nil, fmt.Errorf("canvas size must be positive")
	}
	return e, nil
}

func (e *editCmd) Run() error {
	var bg image.Image
	switch {
	case e.capture:
		img, err := captureFn(context.Background())
		if err != nil {
			return fmt.Errorf("failed to capture screen: %w", err)
		}
		bg = img
	case e.background != "":
		img, err := underlay.FromFile(e.background)
		if err != nil {
			return fmt.Errorf("failed to load background: %w", err)
		}
		bg = img
	}

	opts := []app.Option{
		app.WithLogger(e.logger),
		app.WithTitle(windowTitle(e.output, "")),
		app.WithTheme(e.activeTheme),
		app.WithSize(e.width, e.height),
		app.WithSavePath(e.output),
		app.WithNotifier(e.notifier),
		app.WithSnapSettings(e.config.SnapSettings()),
	}
	if bg != nil {
		// A traced image dictates the canvas size.
		b := bg.Bounds()
		opts = append(opts, app.WithUnderlay(bg), app.WithSize(b.Dx(), b.Dy()))
	}
	if e.colorSpec != "" || e.stroke > 0 {
		st := shape.DefaultStyle()
		st.Color = theme.Hex(e.activeTheme.DefaultStroke)
		if e.colorSpec != "" {
			st.Color = e.colorSpec
		}
		if e.stroke > 0 {
			st.Width = e.stroke
		}
		opts = append(opts, app.WithStyle(st))
	}
	app.New(opts...).Run()
	return nil
}

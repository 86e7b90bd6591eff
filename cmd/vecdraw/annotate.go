package main

import (
	"context"
	"flag"
	"fmt"
	"image"

	"github.com/example/vecdraw/internal/app"
	"github.com/example/vecdraw/internal/pdfexport"
	"github.com/example/vecdraw/internal/underlay"
)

// annotateCmd opens the overlay window and exports the annotations as a
// single-page PDF.
type annotateCmd struct {
	output     string
	background string
	capture    bool
	*root
	fs *flag.FlagSet
}

func (a *annotateCmd) FlagSet() *flag.FlagSet {
	return a.fs
}

func parseAnnotateCmd(args []string, r *root) (*annotateCmd, error) {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	a := &annotateCmd{root: r, fs: fs}
	fs.Usage = usageFunc(a)
	fs.StringVar(&a.output, "output", "annotated.pdf", "PDF file Ctrl+S writes")
	fs.StringVar(&a.background, "background", "", "image file to annotate over")
	fs.BoolVar(&a.capture, "capture", false, "capture the screen and annotate over it")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: a}
	}
	if a.background != "" && a.capture {
		return nil, fmt.Errorf("-background and -capture cannot be combined")
	}
	return a, nil
}

func (a *annotateCmd) Run() error {
	var bg image.Image
	switch {
	case a.capture:
		img, err := captureFn(context.Background())
		if err != nil {
			return fmt.Errorf("failed to capture screen: %w", err)
		}
		bg = img
	case a.background != "":
		img, err := underlay.FromFile(a.background)
		if err != nil {
			return fmt.Errorf("failed to load background: %w", err)
		}
		bg = img
	}

	exporter := pdfexport.New(pdfexport.WithLogger(a.logger))
	page := exporter.PageSize()

	opts := []app.Option{
		app.WithLogger(a.logger),
		app.WithTitle(windowTitle(a.output, "annotate")),
		app.WithMode(app.ModeAnnotate),
		app.WithTheme(a.activeTheme),
		// The canvas matches the page, so canvas pixels map straight to
		// PDF points.
		app.WithSize(int(page.URx), int(page.URy)),
		app.WithPDFPath(a.output),
		app.WithExporter(exporter),
		app.WithNotifier(a.notifier),
	}
	if bg != nil {
		opts = append(opts, app.WithUnderlay(bg))
	}
	app.New(opts...).Run()
	return nil
}

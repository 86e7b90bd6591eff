// Package pdfexport writes annotation overlays into PDF pages. The overlay
// works in canvas pixels with y growing downward; this package is the only
// place the flip into PDF user space (y growing upward) happens.
package pdfexport

import (
	"fmt"
	"io"
	"log/slog"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/example/vecdraw/internal/annotate"
	"github.com/example/vecdraw/internal/render"
)

// Exporter writes one overlay as a single-page PDF. Canvas pixels map onto
// PDF points one to one; the annotate window is sized to the page so no
// scaling is needed.
type Exporter struct {
	logger   *slog.Logger
	pageSize *pdf.Rectangle
	version  pdf.Version
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithPageSize sets the output page. The default is A4.
func WithPageSize(size *pdf.Rectangle) Option {
	return func(e *Exporter) {
		if size != nil {
			e.pageSize = size
		}
	}
}

// WithVersion sets the PDF version written. The default is 1.7.
func WithVersion(v pdf.Version) Option {
	return func(e *Exporter) { e.version = v }
}

// New builds an exporter targeting an A4 page unless told otherwise.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		logger:   slog.New(nopHandler{}),
		pageSize: document.A4,
		version:  pdf.V1_7,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// PageSize returns the output page rectangle.
func (e *Exporter) PageSize() *pdf.Rectangle { return e.pageSize }

// Save writes the annotations to a new single-page PDF file at path.
func (e *Exporter) Save(path string, annots []annotate.Annotation) error {
	page, err := document.CreateSinglePage(path, e.pageSize, e.version, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	e.fill(page, annots)
	if err := page.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	e.logger.Info("pdf written", "path", path, "annotations", len(annots))
	return nil
}

// Write writes the annotations to w as a single-page PDF.
func (e *Exporter) Write(w io.Writer, annots []annotate.Annotation) error {
	page, err := document.WriteSinglePage(w, e.pageSize, e.version, nil)
	if err != nil {
		return err
	}
	e.fill(page, annots)
	return page.Close()
}

func (e *Exporter) fill(page *document.Page, annots []annotate.Annotation) {
	for _, a := range annots {
		conv := e.convert(a)
		if conv == nil {
			e.logger.Warn("cannot export annotation", "id", a.ID())
			continue
		}
		page.Page.Annots = append(page.Page.Annots, conv)
	}
}

// flip maps a canvas y coordinate into PDF user space.
func (e *Exporter) flip(y float64) float64 {
	return e.pageSize.URy - y
}

func (e *Exporter) convert(a annotate.Annotation) annotation.Annotation {
	switch v := a.(type) {
	case *annotate.Line:
		s, t := v.Start(), v.End()
		coords := [4]float64{s.X, e.flip(s.Y), t.X, e.flip(t.Y)}
		return &annotation.Line{
			Common: e.strokeCommon(lineRect(coords, v.Style().Width), v.Style()),
			Coords: coords,
		}
	case *annotate.Rect:
		b := v.Bounds()
		rect := pdf.Rectangle{
			LLx: b.Min.X,
			LLy: e.flip(b.Max.Y),
			URx: b.Max.X,
			URy: e.flip(b.Min.Y),
		}
		return &annotation.Square{Common: e.strokeCommon(rect, v.Style())}
	case *annotate.Text:
		return e.convertText(v)
	}
	return nil
}

func (e *Exporter) convertText(t *annotate.Text) *annotation.FreeText {
	w, h := t.Bounds().Width(), t.Bounds().Height()
	if !t.Measured() {
		// Never drawn, so no surface metrics exist. Estimate the box the
		// way a 12pt proportional face averages out.
		w = 0.6 * t.FontSize() * float64(len(t.Content()))
		h = 1.2 * t.FontSize()
	}
	at := t.At()
	rgba := render.ResolveColor(t.Style().Color)
	return &annotation.FreeText{
		Common: annotation.Common{
			Rect: pdf.Rectangle{
				LLx: at.X,
				LLy: e.flip(at.Y + h),
				URx: at.X + w,
				URy: e.flip(at.Y),
			},
			Contents: t.Content(),
		},
		DefaultAppearance: fmt.Sprintf("%s rg /Helvetica %g Tf", rgbOperands(rgba.R, rgba.G, rgba.B), t.FontSize()),
	}
}

// strokeCommon carries the overlay stroke into the annotation dictionary:
// the color becomes the annotation color, the width the border width.
func (e *Exporter) strokeCommon(rect pdf.Rectangle, st annotate.Style) annotation.Common {
	rgba := render.ResolveColor(st.Color)
	return annotation.Common{
		Rect:   rect,
		Color:  color.DeviceRGB(float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255),
		Border: &annotation.Border{Width: st.Width},
	}
}

// lineRect bounds a line's flipped coordinates, padded by the stroke width
// so the annotation rectangle encloses the drawn ink.
func lineRect(coords [4]float64, width float64) pdf.Rectangle {
	if width < 1 {
		width = 1
	}
	return pdf.Rectangle{
		LLx: min(coords[0], coords[2]) - width,
		LLy: min(coords[1], coords[3]) - width,
		URx: max(coords[0], coords[2]) + width,
		URy: max(coords[1], coords[3]) + width,
	}
}

func rgbOperands(r, g, b uint8) string {
	return fmt.Sprintf("%.3f %.3f %.3f", float64(r)/255, float64(g)/255, float64(b)/255)
}

// Package annotate implements the PDF-overlay annotation layer: a small
// closed family of annotation variants (line, rectangle, free text), a
// manager owning identity and selection, and a drag-driven annotator that
// turns press-drag-release gestures into annotations. Coordinates are
// canvas pixels; the PDF exporter performs the flip into page space.
package annotate

import (
	"math"

	"github.com/example/vecdraw/internal/geom"
)

// DefaultFontSize is the point size text annotations start with.
const DefaultFontSize = 12

// horizontalLockThreshold matches the drawing surface: a line whose
// endpoints start within 2px vertically is treated as horizontal for life.
const horizontalLockThreshold = 2

// Style is the stroke presentation of an annotation.
type Style struct {
	Color string
	Width float64
}

// DefaultStyle returns the style annotators start with.
func DefaultStyle() Style {
	return Style{Color: "red", Width: 2}
}

// Annotation is one overlay element. The variant set is closed; the
// manager assigns identities when annotations are added.
type Annotation interface {
	ID() int
	Style() Style
	Selected() bool
	SetSelected(bool)

	Move(dx, dy float64)
	Contains(p geom.Point, threshold float64) bool
	Bounds() geom.BoundingBox

	setID(int)
	sealed()
}

// Line is a straight stroke between two points.
type Line struct {
	id         int
	style      Style
	selected   bool
	start, end geom.Point
	horizontal bool
}

// NewLine builds a line annotation. Lines created (almost) level are
// locked horizontal: moves keep the endpoints on one y.
func NewLine(a, b geom.Point, style Style) *Line {
	return &Line{
		style:      style,
		start:      a,
		end:        b,
		horizontal: math.Abs(a.Y-b.Y) < horizontalLockThreshold,
	}
}

func (l *Line) ID() int            { return l.id }
func (l *Line) Style() Style       { return l.style }
func (l *Line) Selected() bool     { return l.selected }
func (l *Line) SetSelected(v bool) { l.selected = v }
func (l *Line) Start() geom.Point  { return l.start }
func (l *Line) End() geom.Point    { return l.end }
func (l *Line) Horizontal() bool   { return l.horizontal }

func (l *Line) Move(dx, dy float64) {
	l.start = l.start.Translate(dx, dy)
	l.end = l.end.Translate(dx, dy)
	if l.horizontal {
		l.end.Y = l.start.Y
	}
}

func (l *Line) Contains(p geom.Point, threshold float64) bool {
	return geom.DistanceToSegment(p, l.start, l.end) < threshold
}

func (l *Line) Bounds() geom.BoundingBox {
	return geom.NewBoundingBox(l.start, l.end)
}

// Rect is an axis-aligned rectangle outline.
type Rect struct {
	id       int
	style    Style
	selected bool
	min, max geom.Point
}

// NewRect builds a rectangle annotation from two opposite corners,
// normalized so min ≤ max.
func NewRect(a, b geom.Point, style Style) *Rect {
	box := geom.NewBoundingBox(a, b)
	return &Rect{style: style, min: box.Min, max: box.Max}
}

func (r *Rect) ID() int            { return r.id }
func (r *Rect) Style() Style       { return r.style }
func (r *Rect) Selected() bool     { return r.selected }
func (r *Rect) SetSelected(v bool) { r.selected = v }

func (r *Rect) Move(dx, dy float64) {
	r.min = r.min.Translate(dx, dy)
	r.max = r.max.Translate(dx, dy)
}

func (r *Rect) Contains(p geom.Point, threshold float64) bool {
	return r.Bounds().Contains(p, threshold)
}

func (r *Rect) Bounds() geom.BoundingBox {
	return geom.BoundingBox{Min: r.min, Max: r.max}
}

// Text is a free-text annotation anchored at its top-left corner. Width
// and height are unknown until the first draw measures the rendered string.
type Text struct {
	id       int
	style    Style
	selected bool
	at       geom.Point
	content  string
	fontSize float64
	w, h     float64
}

// NewText builds a text annotation. A zero fontSize takes the default.
func NewText(at geom.Point, content string, style Style, fontSize float64) *Text {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return &Text{style: style, at: at, content: content, fontSize: fontSize}
}

func (t *Text) ID() int             { return t.id }
func (t *Text) Style() Style        { return t.style }
func (t *Text) Selected() bool      { return t.selected }
func (t *Text) SetSelected(v bool)  { t.selected = v }
func (t *Text) At() geom.Point      { return t.at }
func (t *Text) Content() string     { return t.content }
func (t *Text) FontSize() float64   { return t.fontSize }
func (t *Text) Measured() bool      { return t.w > 0 || t.h > 0 }

func (t *Text) Move(dx, dy float64) {
	t.at = t.at.Translate(dx, dy)
}

// setMeasured records the rendered extent; DrawAll calls it after the
// first draw so hit-testing covers the visible string.
func (t *Text) setMeasured(w, h float64) {
	t.w, t.h = w, h
}

func (t *Text) Contains(p geom.Point, threshold float64) bool {
	return t.Bounds().Contains(p, threshold)
}

// Bounds is the anchor point alone until the text has been measured.
func (t *Text) Bounds() geom.BoundingBox {
	return geom.BoundingBox{Min: t.at, Max: t.at.Translate(t.w, t.h)}
}

func (l *Line) setID(id int) { l.id = id }
func (r *Rect) setID(id int) { r.id = id }
func (t *Text) setID(id int) { t.id = id }

func (*Line) sealed() {}
func (*Rect) sealed() {}
func (*Text) sealed() {}

var (
	_ Annotation = (*Line)(nil)
	_ Annotation = (*Rect)(nil)
	_ Annotation = (*Text)(nil)
)

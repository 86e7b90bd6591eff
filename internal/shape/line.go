package shape

import (
	"math"

	"github.com/example/vecdraw/internal/geom"
)

// horizontalTol is the creation-time y-difference below which a line is
// treated as a locked horizontal guide for its whole lifetime.
const horizontalTol = 2

// Line is a straight segment between two endpoints.
type Line struct {
	start, end geom.Point
	horizontal bool
	style      Style
	selected   bool
}

// NewLine creates a line from a to b. Lines created with |a.y − b.y| < 2
// lock as horizontal: every later move keeps both endpoints on one y.
func NewLine(a, b geom.Point, style Style) *Line {
	return &Line{
		start:      a,
		end:        b,
		horizontal: math.Abs(a.Y-b.Y) < horizontalTol,
		style:      style,
	}
}

func (l *Line) Kind() Kind          { return KindLine }
func (l *Line) Style() Style        { return l.style }
func (l *Line) Selected() bool      { return l.selected }
func (l *Line) SetSelected(v bool)  { l.selected = v }
func (l *Line) Start() geom.Point   { return l.start }
func (l *Line) End() geom.Point     { return l.end }
func (l *Line) Horizontal() bool    { return l.horizontal }
func (l *Line) sealed()             {}

func (l *Line) Move(dx, dy float64) {
	l.start = l.start.Translate(dx, dy)
	l.end = l.end.Translate(dx, dy)
	if l.horizontal {
		l.end.Y = l.start.Y
	}
}

// SetEndpoint moves one endpoint (0 = start, 1 = end) to p. Horizontal
// lines re-lock the other endpoint's y so the lock survives endpoint drags.
func (l *Line) SetEndpoint(i int, p geom.Point) {
	if i == 0 {
		l.start = p
		if l.horizontal {
			l.end.Y = p.Y
		}
		return
	}
	l.end = p
	if l.horizontal {
		l.start.Y = p.Y
	}
}

func (l *Line) Contains(p geom.Point, threshold float64) bool {
	return geom.DistanceToSegment(p, l.start, l.end) < threshold
}

func (l *Line) Bounds() geom.BoundingBox {
	return geom.NewBoundingBox(l.start, l.end)
}

func (l *Line) Points() []geom.Point {
	return []geom.Point{l.start, l.end}
}

func (l *Line) SetPoints(pts []geom.Point) {
	if len(pts) != 2 {
		return
	}
	l.start, l.end = pts[0], pts[1]
}

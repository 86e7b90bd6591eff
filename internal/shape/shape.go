// Package shape defines the drawable variants of the editing surface: Line,
// Rect, Circle and Polygon. The variant set is closed (Shape has an
// unexported marker method), so dispatch sites can type-switch exhaustively
// and the compiler flags every site when a variant is added.
package shape

import "github.com/example/vecdraw/internal/geom"

// Kind identifies a shape variant.
type Kind int

const (
	KindLine Kind = iota
	KindRect
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Style is the stroke presentation captured by a shape at commit time.
// Color is a hex string or palette name resolved by the render layer. An
// empty Dash means a solid stroke.
type Style struct {
	Color string
	Width int
	Dash  []float64
}

// DefaultStyle returns the style new editors start with.
func DefaultStyle() Style {
	return Style{Color: "black", Width: 1}
}

// Shape is one drawable element. Geometry is plain data: render handles and
// other drawing bookkeeping live with the render layer, never here.
//
// Points and SetPoints exchange full geometry snapshots (line: start, end;
// rect: the four corners TL TR BR BL; circle: center, radius point;
// polygon: vertices) and are what the undo log records and restores.
type Shape interface {
	Kind() Kind
	Style() Style
	Selected() bool
	SetSelected(bool)

	// Move translates the whole shape by (dx, dy).
	Move(dx, dy float64)
	// Contains reports whether p hits the shape within threshold pixels.
	Contains(p geom.Point, threshold float64) bool
	// Bounds returns the axis-aligned box around the current geometry,
	// recomputed on every call.
	Bounds() geom.BoundingBox

	Points() []geom.Point
	SetPoints([]geom.Point)

	sealed()
}

var (
	_ Shape = (*Line)(nil)
	_ Shape = (*Rect)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Polygon)(nil)
)

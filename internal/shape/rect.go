package shape

import "github.com/example/vecdraw/internal/geom"

// Rect is an axis-aligned rectangle stored as two opposite corners,
// normalized at construction so x1 ≤ x2 and y1 ≤ y2.
type Rect struct {
	x1, y1, x2, y2 float64
	style          Style
	selected       bool
}

// NewRect creates a rectangle spanning the two corners a and b.
func NewRect(a, b geom.Point, style Style) *Rect {
	box := geom.NewBoundingBox(a, b)
	return &Rect{
		x1: box.Min.X, y1: box.Min.Y,
		x2: box.Max.X, y2: box.Max.Y,
		style: style,
	}
}

func (r *Rect) Kind() Kind         { return KindRect }
func (r *Rect) Style() Style       { return r.style }
func (r *Rect) Selected() bool     { return r.selected }
func (r *Rect) SetSelected(v bool) { r.selected = v }
func (r *Rect) sealed()            {}

// Frame returns the stored corner coordinates (x1, y1, x2, y2).
func (r *Rect) Frame() (x1, y1, x2, y2 float64) {
	return r.x1, r.y1, r.x2, r.y2
}

// SetFrame overwrites the corner coordinates without normalizing; resize
// validation happens before this is called.
func (r *Rect) SetFrame(x1, y1, x2, y2 float64) {
	r.x1, r.y1, r.x2, r.y2 = x1, y1, x2, y2
}

// Corners returns the four corners in TL, TR, BR, BL order.
func (r *Rect) Corners() [4]geom.Point {
	return [4]geom.Point{
		geom.Pt(r.x1, r.y1),
		geom.Pt(r.x2, r.y1),
		geom.Pt(r.x2, r.y2),
		geom.Pt(r.x1, r.y2),
	}
}

func (r *Rect) Move(dx, dy float64) {
	r.x1 += dx
	r.y1 += dy
	r.x2 += dx
	r.y2 += dy
}

// Contains hits when p is within threshold of any edge. Clicking the empty
// middle of a large rectangle selects nothing.
func (r *Rect) Contains(p geom.Point, threshold float64) bool {
	c := r.Corners()
	for i := range c {
		if geom.DistanceToSegment(p, c[i], c[(i+1)%4]) < threshold {
			return true
		}
	}
	return false
}

func (r *Rect) Bounds() geom.BoundingBox {
	return geom.NewBoundingBox(geom.Pt(r.x1, r.y1), geom.Pt(r.x2, r.y2))
}

// Anchor is one named resize handle position on a rectangle frame.
type Anchor struct {
	Name string
	P    geom.Point
}

// ResizeAnchors returns the eight handle anchors of a frame: the four
// corners first, then the edge midpoints. Hit-testing scans in this order,
// so corners win when a small frame makes anchors overlap.
func ResizeAnchors(box geom.BoundingBox) []Anchor {
	midX := (box.Min.X + box.Max.X) / 2
	midY := (box.Min.Y + box.Max.Y) / 2
	return []Anchor{
		{Name: "nw", P: box.Min},
		{Name: "ne", P: geom.Pt(box.Max.X, box.Min.Y)},
		{Name: "sw", P: geom.Pt(box.Min.X, box.Max.Y)},
		{Name: "se", P: box.Max},
		{Name: "n", P: geom.Pt(midX, box.Min.Y)},
		{Name: "s", P: geom.Pt(midX, box.Max.Y)},
		{Name: "w", P: geom.Pt(box.Min.X, midY)},
		{Name: "e", P: geom.Pt(box.Max.X, midY)},
	}
}

func (r *Rect) Points() []geom.Point {
	c := r.Corners()
	return c[:]
}

func (r *Rect) SetPoints(pts []geom.Point) {
	if len(pts) != 4 {
		return
	}
	r.x1, r.y1 = pts[0].X, pts[0].Y
	r.x2, r.y2 = pts[2].X, pts[2].Y
}

package geom

import "math"

// BoundingBox is the axis-aligned rectangle spanned by Min and Max.
// Min is component-wise ≤ Max for every box built through NewBoundingBox.
type BoundingBox struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewBoundingBox returns the box spanning a and b, normalizing the corners.
func NewBoundingBox(a, b Point) BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// BoundingBoxOf returns the box enclosing all pts. The zero box is returned
// for an empty slice.
func BoundingBoxOf(pts []Point) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the middle of the box.
func (b BoundingBox) Center() Point {
	return b.Min.Mid(b.Max)
}

// Corners returns the four corners in top-left, top-right, bottom-right,
// bottom-left order.
func (b BoundingBox) Corners() [4]Point {
	return [4]Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}

// Translate returns the box shifted by (dx, dy).
func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	return BoundingBox{Min: b.Min.Translate(dx, dy), Max: b.Max.Translate(dx, dy)}
}

// Union returns the smallest box covering both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside the box or within threshold pixels
// of its nearest edge. The gap is measured per axis and clamped at zero, so
// interior points always have distance 0 and the test is monotonic in the
// threshold.
func (b BoundingBox) Contains(p Point, threshold float64) bool {
	dx := math.Max(math.Max(b.Min.X-p.X, 0), p.X-b.Max.X)
	dy := math.Max(math.Max(b.Min.Y-p.Y, 0), p.Y-b.Max.Y)
	return math.Hypot(dx, dy) <= threshold
}

package shape

import "github.com/example/vecdraw/internal/geom"

// Circle is defined by its center and a second point on the circumference.
type Circle struct {
	center, rim geom.Point
	style       Style
	selected    bool
}

// NewCircle creates a circle centered at center whose radius is the
// distance to rim.
func NewCircle(center, rim geom.Point, style Style) *Circle {
	return &Circle{center: center, rim: rim, style: style}
}

func (c *Circle) Kind() Kind           { return KindCircle }
func (c *Circle) Style() Style         { return c.style }
func (c *Circle) Selected() bool       { return c.selected }
func (c *Circle) SetSelected(v bool)   { c.selected = v }
func (c *Circle) Center() geom.Point   { return c.center }
func (c *Circle) RimPoint() geom.Point { return c.rim }
func (c *Circle) sealed()              {}

// Radius is derived from the current center and rim point.
func (c *Circle) Radius() float64 {
	return c.center.Distance(c.rim)
}

func (c *Circle) Move(dx, dy float64) {
	c.center = c.center.Translate(dx, dy)
	c.rim = c.rim.Translate(dx, dy)
}

// Contains hits anywhere inside the disc; the threshold does not grow the
// hit area.
func (c *Circle) Contains(p geom.Point, threshold float64) bool {
	return p.Distance(c.center) <= c.Radius()
}

func (c *Circle) Bounds() geom.BoundingBox {
	r := c.Radius()
	return geom.BoundingBox{
		Min: geom.Pt(c.center.X-r, c.center.Y-r),
		Max: geom.Pt(c.center.X+r, c.center.Y+r),
	}
}

func (c *Circle) Points() []geom.Point {
	return []geom.Point{c.center, c.rim}
}

func (c *Circle) SetPoints(pts []geom.Point) {
	if len(pts) != 2 {
		return
	}
	c.center, c.rim = pts[0], pts[1]
}

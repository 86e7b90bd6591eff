package shape

import "github.com/example/vecdraw/internal/geom"

// Polygon is an ordered vertex list; the final edge implicitly closes the
// last vertex back to the first.
type Polygon struct {
	vertices []geom.Point
	style    Style
	selected bool
}

// NewPolygon creates a polygon from the given vertices, copying the slice.
// Callers commit polygons with at least three vertices.
func NewPolygon(vertices []geom.Point, style Style) *Polygon {
	pts := make([]geom.Point, len(vertices))
	copy(pts, vertices)
	return &Polygon{vertices: pts, style: style}
}

func (p *Polygon) Kind() Kind         { return KindPolygon }
func (p *Polygon) Style() Style       { return p.style }
func (p *Polygon) Selected() bool     { return p.selected }
func (p *Polygon) SetSelected(v bool) { p.selected = v }
func (p *Polygon) sealed()            {}

// Vertices returns the vertex list in drawing order, as a copy.
func (p *Polygon) Vertices() []geom.Point {
	pts := make([]geom.Point, len(p.vertices))
	copy(pts, p.vertices)
	return pts
}

func (p *Polygon) Move(dx, dy float64) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Translate(dx, dy)
	}
}

func (p *Polygon) Contains(pt geom.Point, threshold float64) bool {
	return p.Bounds().Contains(pt, threshold)
}

func (p *Polygon) Bounds() geom.BoundingBox {
	return geom.BoundingBoxOf(p.vertices)
}

func (p *Polygon) Points() []geom.Point {
	return p.Vertices()
}

func (p *Polygon) SetPoints(pts []geom.Point) {
	p.vertices = make([]geom.Point, len(pts))
	copy(p.vertices, pts)
}

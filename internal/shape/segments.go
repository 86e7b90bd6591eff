package shape

import "github.com/example/vecdraw/internal/geom"

// Segment is one straight piece of a shape's outline.
type Segment struct {
	A, B geom.Point
}

// Segments decomposes a shape's outline into straight pieces: a line is one
// segment, a rectangle four, a polygon one per vertex wrapping back to the
// first. Circles never decompose; circle intersections are handled
// analytically by Intersections.
func Segments(s Shape) []Segment {
	switch v := s.(type) {
	case *Line:
		return []Segment{{A: v.Start(), B: v.End()}}
	case *Rect:
		c := v.Corners()
		segs := make([]Segment, 4)
		for i := 0; i < 4; i++ {
			segs[i] = Segment{A: c[i], B: c[(i+1)%4]}
		}
		return segs
	case *Polygon:
		pts := v.Vertices()
		segs := make([]Segment, 0, len(pts))
		for i := range pts {
			segs = append(segs, Segment{A: pts[i], B: pts[(i+1)%len(pts)]})
		}
		return segs
	case *Circle:
		return nil
	}
	return nil
}

// Intersections returns every point where the outlines of a and b cross.
// Circle pairs are solved analytically; a circle against anything else is
// tested per outline segment; everything else is all segment pairs.
// Coincident duplicates from touching edges are kept; callers tolerate
// them.
func Intersections(a, b Shape) []geom.Point {
	ca, aIsCircle := a.(*Circle)
	cb, bIsCircle := b.(*Circle)

	switch {
	case aIsCircle && bIsCircle:
		return geom.CircleCircleIntersections(ca.Center(), ca.Radius(), cb.Center(), cb.Radius())
	case aIsCircle:
		var pts []geom.Point
		for _, seg := range Segments(b) {
			pts = append(pts, geom.CircleSegmentIntersections(ca.Center(), ca.Radius(), seg.A, seg.B)...)
		}
		return pts
	case bIsCircle:
		return Intersections(b, a)
	}

	var pts []geom.Point
	for _, s1 := range Segments(a) {
		for _, s2 := range Segments(b) {
			if p, ok := geom.SegmentIntersection(s1.A, s1.B, s2.A, s2.B); ok {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

package geom

import "math"

// discriminantTol absorbs floating-point noise when classifying quadratic
// roots: a discriminant within ±0.1 of zero counts as exact tangency.
const discriminantTol = 0.1

// DistanceToSegment returns the distance from p to the segment ab. A
// degenerate segment (length below 0.1) collapses to the distance to a.
func DistanceToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l2 := dx*dx + dy*dy
	if l2 < 0.01 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// SegmentIntersection returns the point where segments ab and cd cross.
// Parallel segments and intersections outside either extent report false.
func SegmentIntersection(a, b, c, d Point) (Point, bool) {
	den := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if den == 0 {
		return Point{}, false
	}
	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / den
	u := -((a.X-b.X)*(a.Y-c.Y) - (a.Y-b.Y)*(a.X-c.X)) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, true
}

// CircleSegmentIntersections returns the points where the circle around
// center with radius r meets the segment ab. Vertical and horizontal
// segments are solved as their own cases so slopes never blow up; candidate
// roots are kept only when they fall within the segment's extent on the
// non-degenerate axis (both axes for slanted segments).
func CircleSegmentIntersections(center Point, r float64, a, b Point) []Point {
	switch {
	case b.X-a.X == 0:
		return circleVerticalHits(center, r, a, b)
	case b.Y-a.Y == 0:
		return circleHorizontalHits(center, r, a, b)
	}

	m := (b.Y - a.Y) / (b.X - a.X)
	c := a.Y - m*a.X
	qa := 1 + m*m
	qb := 2 * (m*(c-center.Y) - center.X)
	qc := center.X*center.X + (c-center.Y)*(c-center.Y) - r*r

	xs, ok := quadraticRoots(qa, qb, qc)
	if !ok {
		return nil
	}
	var pts []Point
	for _, x := range xs {
		y := m*x + c
		if within(x, a.X, b.X) && within(y, a.Y, b.Y) {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

func circleVerticalHits(center Point, r float64, a, b Point) []Point {
	x := a.X
	qb := -2 * center.Y
	qc := center.Y*center.Y + (x-center.X)*(x-center.X) - r*r
	ys, ok := quadraticRoots(1, qb, qc)
	if !ok {
		return nil
	}
	var pts []Point
	for _, y := range ys {
		if within(y, a.Y, b.Y) {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

func circleHorizontalHits(center Point, r float64, a, b Point) []Point {
	y := a.Y
	qb := -2 * center.X
	qc := center.X*center.X + (y-center.Y)*(y-center.Y) - r*r
	xs, ok := quadraticRoots(1, qb, qc)
	if !ok {
		return nil
	}
	var pts []Point
	for _, x := range xs {
		if within(x, a.X, b.X) {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

// quadraticRoots solves qa·t² + qb·t + qc = 0 and classifies the
// discriminant with discriminantTol: clearly negative means no roots,
// near-zero means one tangent root, otherwise two.
func quadraticRoots(qa, qb, qc float64) ([]float64, bool) {
	d := qb*qb - 4*qa*qc
	switch {
	case d < -discriminantTol:
		return nil, false
	case math.Abs(d) <= discriminantTol:
		return []float64{-qb / (2 * qa)}, true
	}
	sq := math.Sqrt(d)
	return []float64{(-qb + sq) / (2 * qa), (-qb - sq) / (2 * qa)}, true
}

// CircleCircleIntersections returns the points where two circles meet:
// none when separate, nested or coincident, one at exact tangency, two
// otherwise (via the law-of-cosines offset from the center-to-center
// bearing).
func CircleCircleIntersections(c1 Point, r1 float64, c2 Point, r2 float64) []Point {
	d := c1.Distance(c2)
	if d > r1+r2 {
		return nil
	}
	if d < math.Abs(r1-r2) {
		return nil
	}
	if d == 0 && r1 == r2 {
		return nil
	}
	if d == r1+r2 || d == math.Abs(r1-r2) {
		t := r1 / d
		return []Point{{X: c1.X + t*(c2.X-c1.X), Y: c1.Y + t*(c2.Y-c1.Y)}}
	}

	a := math.Acos((r1*r1 + d*d - r2*r2) / (2 * r1 * d))
	base := math.Atan2(c2.Y-c1.Y, c2.X-c1.X)
	return []Point{
		{X: c1.X + r1*math.Cos(base+a), Y: c1.Y + r1*math.Sin(base+a)},
		{X: c1.X + r1*math.Cos(base-a), Y: c1.Y + r1*math.Sin(base-a)},
	}
}

func within(v, a, b float64) bool {
	return math.Min(a, b) <= v && v <= math.Max(a, b)
}

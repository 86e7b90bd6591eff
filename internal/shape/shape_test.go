package shape

import (
	"testing"

	"github.com/example/vecdraw/internal/geom"
)

func TestRectCornersClockwiseFromTopLeft(t *testing.T) {
	r := NewRect(geom.Pt(100, 100), geom.Pt(200, 200), DefaultStyle())
	want := [4]geom.Point{
		geom.Pt(100, 100),
		geom.Pt(200, 100),
		geom.Pt(200, 200),
		geom.Pt(100, 200),
	}
	if got := r.Corners(); got != want {
		t.Fatalf("corners = %v, want %v", got, want)
	}
}

func TestNewRectNormalizesOpposingDrag(t *testing.T) {
	a := NewRect(geom.Pt(100, 100), geom.Pt(200, 200), DefaultStyle())
	b := NewRect(geom.Pt(200, 200), geom.Pt(100, 100), DefaultStyle())
	if a.Corners() != b.Corners() {
		t.Fatalf("drag direction changed corners: %v vs %v", a.Corners(), b.Corners())
	}
}

func TestLineHorizontalLock(t *testing.T) {
	l := NewLine(geom.Pt(100, 100), geom.Pt(300, 101), DefaultStyle())
	if !l.Horizontal() {
		t.Fatal("line within 2px of level should be horizontal")
	}

	l.Move(10, 25)
	if l.End().Y != l.Start().Y {
		t.Fatalf("after move end.Y = %v, start.Y = %v, lock lost", l.End().Y, l.Start().Y)
	}
	if l.Start() != geom.Pt(110, 125) {
		t.Fatalf("start = %v, want (110,125)", l.Start())
	}
}

func TestLineSetEndpointRelocksOtherEnd(t *testing.T) {
	l := NewLine(geom.Pt(100, 100), geom.Pt(300, 100), DefaultStyle())
	l.SetEndpoint(0, geom.Pt(80, 140))
	if l.Start() != geom.Pt(80, 140) {
		t.Fatalf("start = %v, want the raw drag position (80,140)", l.Start())
	}
	if l.End().Y != 140 {
		t.Fatalf("end.Y = %v, want 140 (horizontal line follows the dragged end)", l.End().Y)
	}
}

func TestLineSetEndpointFreeWhenSloped(t *testing.T) {
	l := NewLine(geom.Pt(100, 100), geom.Pt(300, 250), DefaultStyle())
	l.SetEndpoint(1, geom.Pt(320, 260))
	if l.End() != geom.Pt(320, 260) {
		t.Fatalf("end = %v, want (320,260)", l.End())
	}
	if l.Start() != geom.Pt(100, 100) {
		t.Fatalf("start moved to %v while dragging the other end", l.Start())
	}
}

func TestContainsPerVariant(t *testing.T) {
	tests := []struct {
		name      string
		s         Shape
		p         geom.Point
		threshold float64
		want      bool
	}{
		{"line near", NewLine(geom.Pt(0, 0), geom.Pt(100, 0), DefaultStyle()), geom.Pt(50, 4), 5, true},
		{"line at threshold", NewLine(geom.Pt(0, 0), geom.Pt(100, 0), DefaultStyle()), geom.Pt(50, 5), 5, false},
		{"rect edge", NewRect(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle()), geom.Pt(50, 3), 5, true},
		{"rect hollow middle", NewRect(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle()), geom.Pt(50, 50), 5, false},
		{"circle inside", NewCircle(geom.Pt(50, 50), geom.Pt(80, 50), DefaultStyle()), geom.Pt(60, 55), 5, true},
		{"circle on rim", NewCircle(geom.Pt(50, 50), geom.Pt(80, 50), DefaultStyle()), geom.Pt(80, 50), 5, true},
		{"circle outside ignores threshold", NewCircle(geom.Pt(50, 50), geom.Pt(80, 50), DefaultStyle()), geom.Pt(82, 50), 5, false},
		{"polygon box", NewPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(50, 80)}, DefaultStyle()), geom.Pt(10, 70), 5, true},
		{"polygon far", NewPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(50, 80)}, DefaultStyle()), geom.Pt(150, 150), 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Contains(tt.p, tt.threshold); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.p, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestSegmentsCount(t *testing.T) {
	tests := []struct {
		name string
		s    Shape
		want int
	}{
		{"line", NewLine(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle()), 1},
		{"rect", NewRect(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle()), 4},
		{"triangle", NewPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, 8)}, DefaultStyle()), 3},
		{"circle", NewCircle(geom.Pt(0, 0), geom.Pt(10, 0), DefaultStyle()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Segments(tt.s)); got != tt.want {
				t.Errorf("len(Segments) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntersectionsRectLine(t *testing.T) {
	r := NewRect(geom.Pt(100, 100), geom.Pt(200, 200), DefaultStyle())
	l := NewLine(geom.Pt(50, 150), geom.Pt(250, 150), DefaultStyle())
	pts := Intersections(r, l)
	if len(pts) != 2 {
		t.Fatalf("got %d points %v, want 2", len(pts), pts)
	}
	seen := map[geom.Point]bool{}
	for _, p := range pts {
		seen[p] = true
	}
	if !seen[geom.Pt(100, 150)] || !seen[geom.Pt(200, 150)] {
		t.Fatalf("points = %v, want left and right edge crossings", pts)
	}
}

func TestIntersectionsCircleOperandOrder(t *testing.T) {
	c := NewCircle(geom.Pt(200, 200), geom.Pt(250, 200), DefaultStyle())
	l := NewLine(geom.Pt(100, 200), geom.Pt(300, 200), DefaultStyle())

	ab := Intersections(c, l)
	ba := Intersections(l, c)
	if len(ab) != 2 || len(ba) != 2 {
		t.Fatalf("got %d and %d points, want 2 each", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i].Distance(ba[i]) > 1e-9 {
			t.Errorf("point[%d] differs by operand order: %v vs %v", i, ab[i], ba[i])
		}
	}
}

func TestIntersectionsCircleCircle(t *testing.T) {
	a := NewCircle(geom.Pt(0, 0), geom.Pt(50, 0), DefaultStyle())
	b := NewCircle(geom.Pt(60, 0), geom.Pt(110, 0), DefaultStyle())
	pts := Intersections(a, b)
	if len(pts) != 2 {
		t.Fatalf("got %d points %v, want 2", len(pts), pts)
	}
	if pts[0].Distance(geom.Pt(30, 40)) > 1e-6 || pts[1].Distance(geom.Pt(30, -40)) > 1e-6 {
		t.Fatalf("points = %v, want (30,40) then (30,-40)", pts)
	}
}

func TestIntersectionsDisjoint(t *testing.T) {
	a := NewRect(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle())
	b := NewRect(geom.Pt(100, 100), geom.Pt(110, 110), DefaultStyle())
	if pts := Intersections(a, b); len(pts) != 0 {
		t.Fatalf("disjoint rects intersect at %v", pts)
	}
}

func TestPointsRoundTrip(t *testing.T) {
	shapes := []Shape{
		NewLine(geom.Pt(1, 2), geom.Pt(30, 40), DefaultStyle()),
		NewRect(geom.Pt(5, 5), geom.Pt(50, 25), DefaultStyle()),
		NewCircle(geom.Pt(10, 10), geom.Pt(22, 10), DefaultStyle()),
		NewPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, 9)}, DefaultStyle()),
	}
	for _, s := range shapes {
		t.Run(s.Kind().String(), func(t *testing.T) {
			before := s.Points()
			s.Move(17, -3)
			s.SetPoints(before)
			after := s.Points()
			if len(after) != len(before) {
				t.Fatalf("point count changed: %d -> %d", len(before), len(after))
			}
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("point[%d] = %v, want %v", i, after[i], before[i])
				}
			}
		})
	}
}

package snap

import (
	"testing"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

func defaultSettings() Settings {
	return Settings{Kinds: DefaultKinds()}
}

func TestFindSnapsToNearbyEndpoint(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewLine(geom.Pt(100, 300), geom.Pt(400, 300), shape.DefaultStyle()),
	}
	got, snapped := Find(shapes, geom.Pt(98, 302), defaultSettings())
	if !snapped {
		t.Fatal("pointer 2.8px from an endpoint should snap")
	}
	if got != geom.Pt(100, 300) {
		t.Fatalf("snapped to %v, want (100,300)", got)
	}
}

func TestFindLeavesFarPointerAlone(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewLine(geom.Pt(100, 300), geom.Pt(400, 300), shape.DefaultStyle()),
	}
	got, snapped := Find(shapes, geom.Pt(120, 320), defaultSettings())
	if snapped {
		t.Fatalf("pointer 28px away snapped to %v", got)
	}
	if got != geom.Pt(120, 320) {
		t.Fatalf("raw point changed to %v", got)
	}
}

func TestFindCandidateFamilies(t *testing.T) {
	rect := shape.NewRect(geom.Pt(100, 100), geom.Pt(200, 200), shape.DefaultStyle())
	line := shape.NewLine(geom.Pt(50, 150), geom.Pt(250, 150), shape.DefaultStyle())
	shapes := []shape.Shape{rect, line}

	tests := []struct {
		name  string
		kinds Kinds
		raw   geom.Point
		want  geom.Point
	}{
		{"rect corner", Kinds{Endpoint: true}, geom.Pt(197, 103), geom.Pt(200, 100)},
		{"rect edge midpoint", Kinds{Midpoint: true}, geom.Pt(152, 104), geom.Pt(150, 100)},
		{"line midpoint", Kinds{Midpoint: true}, geom.Pt(148, 153), geom.Pt(150, 150)},
		{"edge crossing", Kinds{Intersection: true}, geom.Pt(103, 148), geom.Pt(100, 150)},
		{"grid point", Kinds{Grid: true}, geom.Pt(43, 78), geom.Pt(40, 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, snapped := Find(shapes, tt.raw, Settings{Kinds: tt.kinds})
			if !snapped {
				t.Fatalf("no snap for %v", tt.raw)
			}
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("snapped to %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindDisabledKindContributesNothing(t *testing.T) {
	circle := shape.NewCircle(geom.Pt(100, 100), geom.Pt(150, 100), shape.DefaultStyle())
	shapes := []shape.Shape{circle}

	// Only midpoints enabled: circles have none, so nothing can snap.
	got, snapped := Find(shapes, geom.Pt(101, 101), Settings{Kinds: Kinds{Midpoint: true}})
	if snapped {
		t.Fatalf("snapped to %v with no candidates available", got)
	}

	// All kinds off returns the raw pointer untouched.
	got, snapped = Find(shapes, geom.Pt(101, 101), Settings{})
	if snapped || got != geom.Pt(101, 101) {
		t.Fatalf("got %v snapped=%v, want raw point and no snap", got, snapped)
	}
}

func TestFindNearestWinsAcrossShapes(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewLine(geom.Pt(0, 0), geom.Pt(50, 0), shape.DefaultStyle()),
		shape.NewLine(geom.Pt(60, 0), geom.Pt(100, 0), shape.DefaultStyle()),
	}
	// Raw pointer sits between the first line's end (50,0) and the second's
	// start (60,0), slightly nearer the second.
	got, snapped := Find(shapes, geom.Pt(56, 1), defaultSettings())
	if !snapped {
		t.Fatal("expected a snap between two candidates")
	}
	if got != geom.Pt(60, 0) {
		t.Fatalf("snapped to %v, want the nearer candidate (60,0)", got)
	}
}

func TestFindFirstCandidateWinsTies(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewLine(geom.Pt(90, 100), geom.Pt(0, 100), shape.DefaultStyle()),
		shape.NewLine(geom.Pt(110, 100), geom.Pt(200, 100), shape.DefaultStyle()),
	}
	// (100,100) is exactly 10px from both nearest endpoints; enumeration
	// order decides, and the first shape's endpoint was seen first.
	got, snapped := Find(shapes, geom.Pt(100, 100), defaultSettings())
	if !snapped {
		t.Fatal("candidates at exactly the threshold should snap")
	}
	if got != geom.Pt(90, 100) {
		t.Fatalf("snapped to %v, want first-enumerated (90,100)", got)
	}
}

func TestFindIdempotent(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewRect(geom.Pt(100, 100), geom.Pt(200, 200), shape.DefaultStyle()),
		shape.NewLine(geom.Pt(50, 150), geom.Pt(250, 150), shape.DefaultStyle()),
		shape.NewCircle(geom.Pt(300, 300), geom.Pt(340, 300), shape.DefaultStyle()),
	}
	raws := []geom.Point{
		geom.Pt(98, 102), geom.Pt(153, 147), geom.Pt(297, 304), geom.Pt(205, 195),
	}
	for _, raw := range raws {
		once, _ := Find(shapes, raw, defaultSettings())
		twice, _ := Find(shapes, once, defaultSettings())
		if once != twice {
			t.Errorf("snap(%v) = %v but snapping again gave %v", raw, once, twice)
		}
	}
}

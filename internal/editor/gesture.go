package editor

import (
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

// gesture is the in-progress drawing accumulation, a closed variant set:
// nothing pending, one stored point of a two-point shape, or the growing
// vertex list of a polygon. Committed state never flows through here; a
// gesture either becomes a shape or is discarded.
type gesture interface {
	gestureSealed()
}

type gestureNone struct{}

type gestureFirstPoint struct {
	p geom.Point
}

type gesturePolygon struct {
	pts []geom.Point
}

func (gestureNone) gestureSealed()       {}
func (gestureFirstPoint) gestureSealed() {}
func (gesturePolygon) gestureSealed()    {}

// minPolygonVertices is how many vertices a polygon needs before a
// right-click commits it.
const minPolygonVertices = 3

// advanceGesture consumes one (snapped) click for the active drawing tool
// and returns the next gesture plus the committed shape, if the click
// completed one. Two-point tools commit on their second click; polygons
// only accumulate here and commit through completePolygon.
func advanceGesture(g gesture, tool Tool, p geom.Point, st shape.Style) (gesture, shape.Shape) {
	if tool == ToolPolygon {
		switch v := g.(type) {
		case gesturePolygon:
			return gesturePolygon{pts: append(v.pts, p)}, nil
		default:
			return gesturePolygon{pts: []geom.Point{p}}, nil
		}
	}

	first, ok := g.(gestureFirstPoint)
	if !ok {
		return gestureFirstPoint{p: p}, nil
	}

	switch tool {
	case ToolLine:
		return gestureNone{}, shape.NewLine(first.p, p, st)
	case ToolRect:
		return gestureNone{}, shape.NewRect(first.p, p, st)
	case ToolCircle:
		return gestureNone{}, shape.NewCircle(first.p, p, st)
	}
	return gestureNone{}, nil
}

// completePolygon commits an accumulated polygon if it has enough
// vertices. Too few vertices leaves the gesture untouched.
func completePolygon(g gesture, st shape.Style) (gesture, shape.Shape) {
	poly, ok := g.(gesturePolygon)
	if !ok || len(poly.pts) < minPolygonVertices {
		return g, nil
	}
	return gestureNone{}, shape.NewPolygon(poly.pts, st)
}

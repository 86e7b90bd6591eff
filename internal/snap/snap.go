// Package snap adjusts raw pointer coordinates onto nearby geometrically
// significant points: shape endpoints, edge midpoints, pairwise outline
// intersections and, when enabled, a fixed grid. Preview and commit both go
// through Find so the marker a user sees is always the coordinate that
// lands.
package snap

import (
	"math"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

const (
	// DefaultThreshold is how close, in pixels, a candidate must be to the
	// raw pointer before it wins.
	DefaultThreshold = 10

	// DefaultGridSpacing is the distance between grid candidates when grid
	// snapping is on.
	DefaultGridSpacing = 20
)

// Kinds selects which candidate families Find considers.
type Kinds struct {
	Endpoint     bool
	Midpoint     bool
	Intersection bool
	Grid         bool
}

// DefaultKinds snaps to geometry and leaves the grid off.
func DefaultKinds() Kinds {
	return Kinds{Endpoint: true, Midpoint: true, Intersection: true}
}

func (k Kinds) any() bool {
	return k.Endpoint || k.Midpoint || k.Intersection || k.Grid
}

// Settings bundles the runtime-tunable snapping knobs. Zero values fall
// back to the defaults above, so Settings{Kinds: DefaultKinds()} works.
type Settings struct {
	Kinds       Kinds
	Threshold   float64
	GridSpacing float64
}

// Find returns the candidate point nearest to raw if it lies within the
// threshold, or raw unchanged. The second return reports whether a snap
// happened.
//
// Candidates are enumerated in a fixed order (per shape its endpoints
// then its edge midpoints, then every pairwise intersection, then the
// nearest grid point) and distance comparison is strict, so the first
// candidate at the minimum distance wins ties.
func Find(shapes []shape.Shape, raw geom.Point, s Settings) (geom.Point, bool) {
	if !s.Kinds.any() {
		return raw, false
	}
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	best := raw
	bestDist := math.Inf(1)
	consider := func(c geom.Point) {
		if d := raw.Distance(c); d < bestDist {
			best, bestDist = c, d
		}
	}

	for _, sh := range shapes {
		if s.Kinds.Endpoint {
			for _, c := range endpointCandidates(sh) {
				consider(c)
			}
		}
		if s.Kinds.Midpoint {
			for _, c := range midpointCandidates(sh) {
				consider(c)
			}
		}
	}

	if s.Kinds.Intersection {
		for i := 0; i < len(shapes); i++ {
			for j := i + 1; j < len(shapes); j++ {
				for _, c := range shape.Intersections(shapes[i], shapes[j]) {
					consider(c)
				}
			}
		}
	}

	if s.Kinds.Grid {
		spacing := s.GridSpacing
		if spacing <= 0 {
			spacing = DefaultGridSpacing
		}
		consider(geom.Pt(
			math.Round(raw.X/spacing)*spacing,
			math.Round(raw.Y/spacing)*spacing,
		))
	}

	if bestDist <= threshold {
		return best, true
	}
	return raw, false
}

// endpointCandidates returns the anchor points of a shape: line ends,
// rectangle corners, the circle center, polygon vertices.
func endpointCandidates(s shape.Shape) []geom.Point {
	switch v := s.(type) {
	case *shape.Line:
		return []geom.Point{v.Start(), v.End()}
	case *shape.Rect:
		c := v.Corners()
		return c[:]
	case *shape.Circle:
		return []geom.Point{v.Center()}
	case *shape.Polygon:
		return v.Vertices()
	}
	return nil
}

// midpointCandidates returns per-edge midpoints. Circles contribute none.
func midpointCandidates(s shape.Shape) []geom.Point {
	switch v := s.(type) {
	case *shape.Line:
		return []geom.Point{v.Start().Mid(v.End())}
	case *shape.Rect:
		c := v.Corners()
		mids := make([]geom.Point, 4)
		for i := 0; i < 4; i++ {
			mids[i] = c[i].Mid(c[(i+1)%4])
		}
		return mids
	case *shape.Circle:
		return nil
	case *shape.Polygon:
		pts := v.Vertices()
		mids := make([]geom.Point, 0, len(pts))
		for i := range pts {
			mids = append(mids, pts[i].Mid(pts[(i+1)%len(pts)]))
		}
		return mids
	}
	return nil
}

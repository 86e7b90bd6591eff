package editor

import (
	"math"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

const (
	// hitThreshold is how close the pointer must be to a shape outline
	// (or line endpoint) to count as a hit.
	hitThreshold = 5
	// handleTol is the per-axis tolerance around a resize handle center.
	handleTol = 5
)

// hitTest reports whether p hits s. For lines the endpoints are checked
// first so the caller learns which endpoint (0 or 1) is under the pointer;
// -1 means the hit is on the body.
func hitTest(s shape.Shape, p geom.Point) (endpoint int, ok bool) {
	if l, isLine := s.(*shape.Line); isLine {
		for i, ep := range []geom.Point{l.Start(), l.End()} {
			if math.Abs(p.X-ep.X) <= hitThreshold && math.Abs(p.Y-ep.Y) <= hitThreshold {
				return i, true
			}
		}
	}
	if s.Contains(p, hitThreshold) {
		return -1, true
	}
	return -1, false
}

// cornerDistance ranks competing unselected hits: the shape whose nearer
// bounding-box corner is closest to the pointer wins.
func cornerDistance(s shape.Shape, p geom.Point) float64 {
	b := s.Bounds()
	return math.Min(p.Distance(b.Min), p.Distance(b.Max))
}

// selectAt applies single-point selection at p. Shapes are scanned in
// reverse z-order; an already-selected hit is preferred immediately
// (sticky selection). Otherwise the nearest unselected hit by corner
// distance becomes the selection. Ctrl toggles membership instead of
// replacing; a miss clears the selection unless Ctrl is held.
//
// Returns the shape the interaction now centers on (nil after a miss or a
// Ctrl-deselect) and the line endpoint index under the pointer (-1 none).
func selectAt(d *Document, p geom.Point, ctrl bool) (shape.Shape, int) {
	shapes := d.Shapes()

	var best shape.Shape
	bestEndpoint := -1
	bestDist := math.Inf(1)

	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		ep, ok := hitTest(s, p)
		if !ok {
			continue
		}
		if s.Selected() {
			if ctrl {
				s.SetSelected(false)
				return nil, -1
			}
			return s, ep
		}
		if dist := cornerDistance(s, p); dist < bestDist {
			best, bestEndpoint, bestDist = s, ep, dist
		}
	}

	if best == nil {
		if !ctrl {
			d.ClearSelection()
		}
		return nil, -1
	}

	if !ctrl {
		d.ClearSelection()
	}
	best.SetSelected(true)
	return best, bestEndpoint
}

// selectPoints applies multi-point selection: for each sampled point the
// topmost unselected hit is added to the selection. Already-selected
// shapes are skipped so repeated sampling never toggles. Returns how many
// shapes were newly selected.
func selectPoints(d *Document, pts []geom.Point) int {
	shapes := d.Shapes()
	added := 0
	for _, p := range pts {
		for i := len(shapes) - 1; i >= 0; i-- {
			s := shapes[i]
			if s.Selected() {
				continue
			}
			if _, ok := hitTest(s, p); ok {
				s.SetSelected(true)
				added++
				break
			}
		}
	}
	return added
}

// resizeHandleAt finds a resize handle of the current selection under p.
// Only rectangles carry handles; the first selected rectangle (z-order)
// with an anchor within the tolerance wins.
func resizeHandleAt(d *Document, p geom.Point) (*shape.Rect, string) {
	for _, s := range d.Shapes() {
		r, isRect := s.(*shape.Rect)
		if !isRect || !s.Selected() {
			continue
		}
		for _, a := range shape.ResizeAnchors(r.Bounds()) {
			if math.Abs(p.X-a.P.X) <= handleTol && math.Abs(p.Y-a.P.Y) <= handleTol {
				return r, a.Name
			}
		}
	}
	return nil, ""
}

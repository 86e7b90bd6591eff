package annotate

import (
	"log/slog"
	"math"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/render"
)

// hitThreshold is how close the pointer must be to an annotation to count
// as a hit, matching the drawing surface's tolerance.
const hitThreshold = 5

// Manager owns the annotation collection of one overlay session: identity
// assignment, z-order, selection, and drawing.
type Manager struct {
	logger      *slog.Logger
	annotations []Annotation
	nextID      int
}

// NewManager returns an empty manager. A nil logger silences diagnostics.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	return &Manager{logger: logger}
}

// Add assigns the next identity to a and appends it on top. Returns the id.
func (m *Manager) Add(a Annotation) int {
	m.nextID++
	a.setID(m.nextID)
	m.annotations = append(m.annotations, a)
	m.logger.Debug("annotation added", "id", m.nextID)
	return m.nextID
}

// All returns the annotations in z-order. Callers must not mutate it.
func (m *Manager) All() []Annotation { return m.annotations }

func (m *Manager) Len() int { return len(m.annotations) }

// Remove deletes a by identity.
func (m *Manager) Remove(a Annotation) bool {
	for i, have := range m.annotations {
		if have == a {
			m.annotations = append(m.annotations[:i], m.annotations[i+1:]...)
			return true
		}
	}
	return false
}

// Selected returns the selected annotations in z-order.
func (m *Manager) Selected() []Annotation {
	var out []Annotation
	for _, a := range m.annotations {
		if a.Selected() {
			out = append(out, a)
		}
	}
	return out
}

func (m *Manager) SelectionCount() int {
	n := 0
	for _, a := range m.annotations {
		if a.Selected() {
			n++
		}
	}
	return n
}

func (m *Manager) ClearSelection() {
	for _, a := range m.annotations {
		a.SetSelected(false)
	}
}

// SelectAll selects every annotation and returns how many.
func (m *Manager) SelectAll() int {
	for _, a := range m.annotations {
		a.SetSelected(true)
	}
	return len(m.annotations)
}

// SelectAt applies single-point selection at p with the same semantics as
// the drawing surface: reverse z-order scan, already-selected hits win
// immediately, otherwise the nearest unselected hit by corner distance.
// Ctrl toggles membership; a miss clears the selection unless Ctrl.
func (m *Manager) SelectAt(p geom.Point, ctrl bool) Annotation {
	var best Annotation
	bestDist := math.Inf(1)

	for i := len(m.annotations) - 1; i >= 0; i-- {
		a := m.annotations[i]
		if !a.Contains(p, hitThreshold) {
			continue
		}
		if a.Selected() {
			if ctrl {
				a.SetSelected(false)
				return nil
			}
			return a
		}
		b := a.Bounds()
		if d := math.Min(p.Distance(b.Min), p.Distance(b.Max)); d < bestDist {
			best, bestDist = a, d
		}
	}

	if best == nil {
		if !ctrl {
			m.ClearSelection()
		}
		return nil
	}

	if !ctrl {
		m.ClearSelection()
	}
	best.SetSelected(true)
	return best
}

// SelectMultiple adds, for each sampled point, the topmost unselected hit
// to the selection. Returns how many annotations were newly selected.
func (m *Manager) SelectMultiple(pts []geom.Point) int {
	added := 0
	for _, p := range pts {
		for i := len(m.annotations) - 1; i >= 0; i-- {
			a := m.annotations[i]
			if a.Selected() {
				continue
			}
			if a.Contains(p, hitThreshold) {
				a.SetSelected(true)
				added++
				break
			}
		}
	}
	return added
}

// MoveSelected translates every selected annotation. Returns how many moved.
func (m *Manager) MoveSelected(dx, dy float64) int {
	n := 0
	for _, a := range m.annotations {
		if a.Selected() {
			a.Move(dx, dy)
			n++
		}
	}
	return n
}

// DeleteSelected removes every selected annotation. Returns how many.
func (m *Manager) DeleteSelected() int {
	kept := m.annotations[:0]
	removed := 0
	for _, a := range m.annotations {
		if a.Selected() {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	m.annotations = kept
	if removed == 0 {
		m.logger.Debug("delete with empty selection")
	}
	return removed
}

// DrawAll renders every annotation bottom-up, preceding each selected one
// with a highlight outline two pixels wider in the selection color. Text
// annotations are measured on their first draw so hit-testing covers the
// rendered string.
func (m *Manager) DrawAll(s render.Surface, d render.Decor) {
	for _, a := range m.annotations {
		if a.Selected() {
			m.drawHighlight(s, a, d)
		}
		m.draw(s, a)
	}
}

func (m *Manager) draw(s render.Surface, a Annotation) {
	switch v := a.(type) {
	case *Line:
		s.Line(v.start, v.end, render.Style{Color: v.style.Color, Width: v.style.Width})
	case *Rect:
		s.Rect(v.Bounds(), render.Style{Color: v.style.Color, Width: v.style.Width})
	case *Text:
		h := s.Text(v.at, v.content, render.Style{Color: v.style.Color, Size: v.fontSize})
		if !v.Measured() {
			if box, ok := s.BoundsOf(h); ok {
				v.setMeasured(box.Width(), box.Height())
			}
		}
	default:
		m.logger.Warn("cannot draw annotation", "id", a.ID())
	}
}

func (m *Manager) drawHighlight(s render.Surface, a Annotation, d render.Decor) {
	hl := render.Style{Color: d.Selection, Width: a.Style().Width + 2}
	switch v := a.(type) {
	case *Line:
		s.Line(v.start, v.end, hl, render.TagAnnotationHighlight)
	case *Rect:
		s.Rect(v.Bounds(), hl, render.TagAnnotationHighlight)
	case *Text:
		s.Rect(v.Bounds(), hl, render.TagAnnotationHighlight)
	}
}

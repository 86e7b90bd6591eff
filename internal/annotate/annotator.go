package annotate

import (
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/render"
)

// Tool selects what a press-drag-release gesture produces.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRect
	ToolText
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolText:
		return "text"
	}
	return "unknown"
}

// Annotator turns pointer gestures into annotations. It owns the current
// tool and stroke settings; the manager owns the results.
type Annotator struct {
	manager  *Manager
	tool     Tool
	style    Style
	fontSize float64

	dragging bool
	shift    bool
	start    geom.Point
	current  geom.Point
}

// NewAnnotator builds an annotator over m, opening on the line tool with
// the default red stroke.
func NewAnnotator(m *Manager) *Annotator {
	return &Annotator{
		manager:  m,
		tool:     ToolLine,
		style:    DefaultStyle(),
		fontSize: DefaultFontSize,
	}
}

func (an *Annotator) Tool() Tool        { return an.tool }
func (an *Annotator) Style() Style      { return an.style }
func (an *Annotator) FontSize() float64 { return an.fontSize }

// SetTool switches tools and discards any in-progress drag.
func (an *Annotator) SetTool(t Tool) {
	an.tool = t
	an.dragging = false
}

func (an *Annotator) SetColor(c string) { an.style.Color = c }

func (an *Annotator) SetWidth(w float64) {
	if w < 1 {
		w = 1
	}
	an.style.Width = w
}

func (an *Annotator) SetFontSize(size float64) {
	if size > 0 {
		an.fontSize = size
	}
}

// Dragging reports whether a creation gesture is in progress.
func (an *Annotator) Dragging() bool { return an.dragging }

// Begin starts a creation drag at p. Shift held on a line drag locks the
// line horizontal for its lifetime. Select and text tools do not drag.
func (an *Annotator) Begin(p geom.Point, shift bool) {
	if an.tool != ToolLine && an.tool != ToolRect {
		return
	}
	an.dragging = true
	an.shift = shift
	an.start = p
	an.current = p
}

// Update tracks the pointer during a creation drag.
func (an *Annotator) Update(p geom.Point) {
	if !an.dragging {
		return
	}
	an.current = an.lock(p)
}

// End finishes the drag at p and adds the annotation to the manager. A
// press released without movement produces nothing.
func (an *Annotator) End(p geom.Point) Annotation {
	if !an.dragging {
		return nil
	}
	an.dragging = false
	end := an.lock(p)
	if end == an.start {
		return nil
	}
	var a Annotation
	switch an.tool {
	case ToolLine:
		a = NewLine(an.start, end, an.style)
	case ToolRect:
		a = NewRect(an.start, end, an.style)
	default:
		return nil
	}
	an.manager.Add(a)
	return a
}

// Cancel discards the in-progress drag.
func (an *Annotator) Cancel() { an.dragging = false }

// PlaceText adds a text annotation anchored at p. Empty content is
// dropped rather than committed.
func (an *Annotator) PlaceText(p geom.Point, content string) *Text {
	if content == "" {
		return nil
	}
	t := NewText(p, content, an.style, an.fontSize)
	an.manager.Add(t)
	return t
}

// Preview draws the in-progress gesture in the annotation's own style so
// the drag shows exactly what release will commit.
func (an *Annotator) Preview(s render.Surface) {
	if !an.dragging {
		return
	}
	st := render.Style{Color: an.style.Color, Width: an.style.Width}
	switch an.tool {
	case ToolLine:
		s.Line(an.start, an.current, st, render.TagPreview)
	case ToolRect:
		s.Rect(geom.NewBoundingBox(an.start, an.current), st, render.TagPreview)
	}
}

// lock applies the Shift horizontal constraint to line drags.
func (an *Annotator) lock(p geom.Point) geom.Point {
	if an.tool == ToolLine && an.shift {
		p.Y = an.start.Y
	}
	return p
}

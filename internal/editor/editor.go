// Package editor implements the interactive drawing core: a document of
// shapes, tool-driven construction gestures, selection, move and resize
// drags, snapping, and the undo log. The package is UI-free: pointer and
// key input arrive as plain method calls and drawing goes through the
// render.Surface interface, so the whole interaction model runs headless
// under test.
package editor

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/history"
	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/snap"
)

// Tool selects what a left click on the surface does.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRect
	ToolCircle
	ToolPolygon
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolPolygon:
		return "polygon"
	}
	return "unknown"
}

// kind maps a drawing tool to the variant it commits; false for select.
func (t Tool) kind() (shape.Kind, bool) {
	switch t {
	case ToolLine:
		return shape.KindLine, true
	case ToolRect:
		return shape.KindRect, true
	case ToolCircle:
		return shape.KindCircle, true
	case ToolPolygon:
		return shape.KindPolygon, true
	}
	return 0, false
}

// duplicateOffset is how far Ctrl+D places copies from their originals.
const duplicateOffset = 20

// Editor is the interaction core of one drawing session: document, active
// tool and stroke style, undo log, selection, and in-flight drag state.
// The window layer feeds it events and asks it to repaint onto a Surface.
type Editor struct {
	logger  *slog.Logger
	doc     *Document
	log     *history.Log
	surface render.Surface
	handles *render.HandleTable
	status  func(string)
	decor   render.Decor

	tool  Tool
	style shape.Style
	snap  snap.Settings

	gesture gesture

	// pointer tracking for the preview and snap marker
	pointer geom.Point
	cursor  geom.Point
	snapHit bool

	// transient drag state, cleared on Release
	moving        bool
	resizing      bool
	sweeping      bool
	handle        string
	resizeRect    *shape.Rect
	resizeStart   []geom.Point
	endpointLine  *shape.Line
	endpointIdx   int
	endpointStart []geom.Point
	dragShapes    []shape.Shape
	dragStart     [][]geom.Point
	last          geom.Point
	moved         bool
}

// Option configures an Editor at construction.
type Option func(*Editor)

// WithLogger sets the structured logger. Nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSurface attaches the drawing surface Repaint renders onto.
func WithSurface(s render.Surface) Option {
	return func(e *Editor) { e.surface = s }
}

// WithStatusFunc routes one-line status messages, e.g. to a window strip.
func WithStatusFunc(fn func(string)) Option {
	return func(e *Editor) {
		if fn != nil {
			e.status = fn
		}
	}
}

// WithSnapSettings overrides the snap configuration.
func WithSnapSettings(s snap.Settings) Option {
	return func(e *Editor) { e.snap = s }
}

// WithStyle sets the starting stroke style.
func WithStyle(st shape.Style) Option {
	return func(e *Editor) { e.style = st }
}

// WithTool sets the starting tool.
func WithTool(t Tool) Option {
	return func(e *Editor) { e.tool = t }
}

// WithDecor sets theme-resolved decoration colors.
func WithDecor(d render.Decor) Option {
	return func(e *Editor) { e.decor = d }
}

// New builds an editor. Defaults: select tool, black 1px solid stroke,
// geometry snapping on, no surface attached (headless).
func New(opts ...Option) *Editor {
	e := &Editor{
		logger:      slog.New(nopHandler{}),
		doc:         NewDocument(),
		handles:     render.NewHandleTable(),
		status:      func(string) {},
		decor:       render.DefaultDecor(),
		tool:        ToolSelect,
		style:       shape.DefaultStyle(),
		snap:        snap.Settings{Kinds: snap.DefaultKinds()},
		gesture:     gestureNone{},
		endpointIdx: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = history.NewLog(e.logger)
	return e
}

func (e *Editor) Doc() *Document          { return e.doc }
func (e *Editor) History() *history.Log   { return e.log }
func (e *Editor) Tool() Tool              { return e.tool }
func (e *Editor) Style() shape.Style      { return e.style }

// SnapSettings returns the active snap configuration.
func (e *Editor) SnapSettings() snap.Settings { return e.snap }

// SetSnapSettings replaces the snap configuration, effective immediately.
func (e *Editor) SetSnapSettings(s snap.Settings) { e.snap = s }

// SetTool switches the active tool, discarding any in-progress gesture so
// a half-drawn shape never commits under a different tool.
func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.gesture = gestureNone{}
	e.tool = t
	e.statusf("tool: %s", t)
}

func (e *Editor) statusf(format string, args ...any) {
	e.status(fmt.Sprintf(format, args...))
}

// SetColor changes the stroke color for future shapes and records the
// change in the undo log. Setting the current color is a no-op.
func (e *Editor) SetColor(c string) {
	if c == e.style.Color {
		return
	}
	before := e.style.Color
	e.style.Color = c
	e.log.Push(&history.Property{Name: "color", Before: before, After: c})
	e.statusf("color: %s", c)
}

// SetWidth changes the stroke width for future shapes. Widths below 1 are
// clamped.
func (e *Editor) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	if w == e.style.Width {
		return
	}
	before := e.style.Width
	e.style.Width = w
	e.log.Push(&history.Property{Name: "width", Before: before, After: w})
	e.statusf("width: %d", w)
}

// SetDash changes the dash pattern for future shapes; empty means solid.
func (e *Editor) SetDash(d []float64) {
	if slices.Equal(d, e.style.Dash) {
		return
	}
	before := e.style.Dash
	e.style.Dash = slices.Clone(d)
	e.log.Push(&history.Property{Name: "dash", Before: before, After: e.style.Dash})
	if len(d) == 0 {
		e.status("dash: solid")
	} else {
		e.statusf("dash: %v", d)
	}
}

// InsertShape implements history.Target.
func (e *Editor) InsertShape(s shape.Shape, index int) {
	e.doc.Insert(s, index)
}

// RemoveShape implements history.Target.
func (e *Editor) RemoveShape(s shape.Shape) int {
	return e.doc.Remove(s)
}

// SetProperty implements history.Target: replayed property entries land on
// the editor-level stroke style. Unknown names are logged and skipped.
func (e *Editor) SetProperty(name string, value any) {
	switch name {
	case "color":
		if v, ok := value.(string); ok {
			e.style.Color = v
			return
		}
	case "width":
		if v, ok := value.(int); ok {
			e.style.Width = v
			return
		}
	case "dash":
		if v, ok := value.([]float64); ok {
			e.style.Dash = v
			return
		}
	}
	e.logger.Warn("ignoring property replay", "property", name, "value", value)
}

// Undo reverts the most recent edit.
func (e *Editor) Undo() bool {
	if !e.log.Undo(e) {
		e.status("nothing to undo")
		return false
	}
	e.status("undo")
	return true
}

// Redo re-applies the most recently undone edit.
func (e *Editor) Redo() bool {
	if !e.log.Redo(e) {
		e.status("nothing to redo")
		return false
	}
	e.status("redo")
	return true
}

// SelectAll selects every shape and returns how many.
func (e *Editor) SelectAll() int {
	n := e.doc.SelectAll()
	e.statusf("selected %d", n)
	return n
}

// DeleteSelected removes every selected shape as one undoable batch.
// Returns how many shapes were removed.
func (e *Editor) DeleteSelected() int {
	var shapes []shape.Shape
	var indices []int
	for i, s := range e.doc.Shapes() {
		if s.Selected() {
			shapes = append(shapes, s)
			indices = append(indices, i)
		}
	}
	if len(shapes) == 0 {
		return 0
	}
	for _, s := range shapes {
		s.SetSelected(false)
		e.doc.Remove(s)
	}
	e.log.Push(&history.DeleteMulti{Shapes: shapes, Indices: indices})
	e.statusf("deleted %d", len(shapes))
	return len(shapes)
}

// DeleteShape removes one shape and records a single delete entry.
func (e *Editor) DeleteShape(s shape.Shape) bool {
	idx := e.doc.Remove(s)
	if idx < 0 {
		return false
	}
	s.SetSelected(false)
	e.log.Push(&history.Delete{Shape: s, Index: idx})
	return true
}

// DuplicateSelected clones every selected shape offset by (+20, +20) and
// moves the selection to the copies. The copies are not undoable, but the
// redo stack is cut so stale entries cannot replay over them.
func (e *Editor) DuplicateSelected() int {
	selected := e.doc.Selected()
	if len(selected) == 0 {
		return 0
	}
	var copies []shape.Shape
	for _, s := range selected {
		c := duplicateShape(s)
		if c == nil {
			e.logger.Warn("cannot duplicate shape", "kind", s.Kind().String())
			continue
		}
		copies = append(copies, c)
	}
	if len(copies) == 0 {
		return 0
	}
	e.doc.ClearSelection()
	for _, c := range copies {
		c.SetSelected(true)
		e.doc.Append(c)
	}
	e.log.CutRedo()
	e.statusf("duplicated %d", len(copies))
	return len(copies)
}

func duplicateShape(s shape.Shape) shape.Shape {
	st := s.Style()
	switch v := s.(type) {
	case *shape.Line:
		a, b := v.Start(), v.End()
		return shape.NewLine(
			a.Translate(duplicateOffset, duplicateOffset),
			b.Translate(duplicateOffset, duplicateOffset),
			st,
		)
	case *shape.Rect:
		x1, y1, x2, y2 := v.Frame()
		return shape.NewRect(
			geom.Pt(x1+duplicateOffset, y1+duplicateOffset),
			geom.Pt(x2+duplicateOffset, y2+duplicateOffset),
			st,
		)
	case *shape.Circle:
		center := v.Center().Translate(duplicateOffset, duplicateOffset)
		rim := geom.Pt(center.X+v.Radius(), center.Y)
		return shape.NewCircle(center, rim, st)
	case *shape.Polygon:
		verts := v.Vertices()
		moved := make([]geom.Point, len(verts))
		for i, p := range verts {
			moved[i] = p.Translate(duplicateOffset, duplicateOffset)
		}
		return shape.NewPolygon(moved, st)
	}
	return nil
}

// CancelGesture discards the in-progress drawing gesture. Returns whether
// there was one.
func (e *Editor) CancelGesture() bool {
	if _, idle := e.gesture.(gestureNone); idle {
		return false
	}
	e.gesture = gestureNone{}
	e.status("canceled")
	return true
}

// snapTo runs the raw pointer through the snap engine and tracks both
// positions so the repaint can place the preview and the snap marker.
func (e *Editor) snapTo(raw geom.Point) geom.Point {
	p, hit := snap.Find(e.doc.Shapes(), raw, e.snap)
	e.pointer, e.cursor, e.snapHit = raw, p, hit
	return p
}

// Repaint rebuilds the surface from scratch: committed shapes bottom-up,
// selection decorations, the construction preview, and the snap marker
// when the pointer snapped away from its raw position.
func (e *Editor) Repaint() {
	if e.surface == nil {
		return
	}
	e.surface.Clear()
	e.handles.Reset()
	for _, s := range e.doc.Shapes() {
		e.handles.Set(s, render.DrawShape(e.surface, s))
	}
	for _, s := range e.doc.Selected() {
		render.DrawSelection(e.surface, s, e.decor)
	}
	e.drawGesturePreview()
	if e.snapHit && e.cursor != e.pointer {
		render.DrawSnapMarker(e.surface, e.cursor, e.decor)
	}
}

// drawGesturePreview strokes the shape under construction in the preview
// color with the current width and dash.
func (e *Editor) drawGesturePreview() {
	st := e.style
	st.Color = e.decor.Preview
	switch g := e.gesture.(type) {
	case gestureFirstPoint:
		if k, ok := e.tool.kind(); ok {
			render.DrawPreview(e.surface, k, g.p, e.cursor, st)
		}
	case gesturePolygon:
		render.DrawPolygonPreview(e.surface, g.pts, e.cursor, st)
	}
}

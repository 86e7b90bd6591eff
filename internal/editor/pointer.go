package editor

import (
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/history"
	"github.com/example/vecdraw/internal/shape"
)

// minRectSize is the smallest width and height a resize drag may produce.
// Updates below it are rejected outright, leaving the last valid frame, so
// a rectangle can never invert or collapse mid-drag.
const minRectSize = 10

// Press handles a left button press at p. Drawing tools advance the
// construction gesture with the snapped point; the select tool starts a
// resize, endpoint, or move drag, or updates the selection.
//
// Drag snapshots are taken here, after the selection settles, so the undo
// entry pushed at Release covers exactly the shapes that dragged.
func (e *Editor) Press(p geom.Point, ctrl bool) {
	if e.tool != ToolSelect {
		e.pressDraw(p)
		return
	}

	e.pointer, e.cursor, e.snapHit = p, p, false

	if !ctrl {
		if r, h := resizeHandleAt(e.doc, p); r != nil {
			e.resizing = true
			e.handle = h
			e.resizeRect = r
			e.resizeStart = r.Points()
			e.last = p
			e.moved = false
			return
		}
	}

	active, endpoint := selectAt(e.doc, p, ctrl)
	if active == nil || ctrl {
		// A plain press that hit nothing starts a sweep: dragging across
		// shapes adds each one passed over to the selection.
		if active == nil && !ctrl {
			e.sweeping = true
		}
		return
	}

	if l, isLine := active.(*shape.Line); isLine && endpoint >= 0 {
		e.endpointLine = l
		e.endpointIdx = endpoint
		e.endpointStart = l.Points()
		e.last = p
		e.moved = false
		return
	}

	e.moving = true
	e.dragShapes = e.doc.Selected()
	e.dragStart = make([][]geom.Point, len(e.dragShapes))
	for i, s := range e.dragShapes {
		e.dragStart[i] = s.Points()
	}
	e.last = p
	e.moved = false
}

func (e *Editor) pressDraw(p geom.Point) {
	snapped := e.snapTo(p)
	next, committed := advanceGesture(e.gesture, e.tool, snapped, e.style)
	e.gesture = next
	if committed != nil {
		e.commit(committed)
		return
	}
	if poly, ok := next.(gesturePolygon); ok {
		e.statusf("vertex %d", len(poly.pts))
	}
}

func (e *Editor) commit(s shape.Shape) {
	e.doc.Append(s)
	e.log.Push(&history.Add{Shape: s})
	e.statusf("%s added", s.Kind())
}

// Motion tracks the pointer while no button is held. Drawing tools run the
// snap engine so the preview and marker follow the hover position; the
// select tool tracks the raw pointer.
func (e *Editor) Motion(p geom.Point) {
	if e.tool == ToolSelect {
		e.pointer, e.cursor, e.snapHit = p, p, false
		return
	}
	e.snapTo(p)
}

// Drag handles pointer movement with the left button held.
//
// Resize drags snap the pointer, so handles land on the same geometry a
// construction click would. Move and endpoint drags follow the raw
// pointer: translating by snapped deltas would make a grabbed shape jump.
func (e *Editor) Drag(p geom.Point) {
	if e.tool != ToolSelect {
		e.snapTo(p)
		return
	}

	switch {
	case e.resizing:
		e.dragResize(e.snapTo(p))
	case e.endpointLine != nil:
		e.endpointLine.SetEndpoint(e.endpointIdx, p)
		e.pointer, e.cursor, e.snapHit = p, p, false
		e.moved = true
	case e.moving:
		dx, dy := p.X-e.last.X, p.Y-e.last.Y
		if dx != 0 || dy != 0 {
			for _, s := range e.dragShapes {
				s.Move(dx, dy)
			}
			e.moved = true
		}
		e.last = p
		e.pointer, e.cursor, e.snapHit = p, p, false
	case e.sweeping:
		selectPoints(e.doc, []geom.Point{p})
		e.pointer, e.cursor, e.snapHit = p, p, false
	default:
		e.pointer, e.cursor, e.snapHit = p, p, false
	}
}

func (e *Editor) dragResize(p geom.Point) {
	x1, y1, x2, y2 := e.resizeRect.Frame()
	switch e.handle {
	case "nw":
		x1, y1 = p.X, p.Y
	case "ne":
		x2, y1 = p.X, p.Y
	case "sw":
		x1, y2 = p.X, p.Y
	case "se":
		x2, y2 = p.X, p.Y
	case "n":
		y1 = p.Y
	case "s":
		y2 = p.Y
	case "w":
		x1 = p.X
	case "e":
		x2 = p.X
	default:
		e.logger.Warn("unknown resize handle", "handle", e.handle)
		return
	}
	// Signed, so dragging a handle across the opposite edge is rejected
	// the same as shrinking below the minimum.
	if x2-x1 < minRectSize || y2-y1 < minRectSize {
		return
	}
	e.resizeRect.SetFrame(x1, y1, x2, y2)
	e.moved = true
}

// Release ends the drag in progress and, if anything actually moved,
// pushes its undo entry. Snapshots were taken at Press; geometry is read
// back here so the entry replays the exact final state.
func (e *Editor) Release(p geom.Point) {
	switch {
	case e.resizing:
		if e.moved {
			e.log.Push(&history.Resize{
				Shape:  e.resizeRect,
				Before: e.resizeStart,
				After:  e.resizeRect.Points(),
			})
		}
	case e.endpointLine != nil:
		if e.moved {
			e.log.Push(&history.Resize{
				Shape:  e.endpointLine,
				Before: e.endpointStart,
				After:  e.endpointLine.Points(),
			})
		}
	case e.moving:
		if e.moved {
			after := make([][]geom.Point, len(e.dragShapes))
			for i, s := range e.dragShapes {
				after[i] = s.Points()
			}
			e.log.Push(&history.Move{
				Shapes: e.dragShapes,
				Before: e.dragStart,
				After:  after,
			})
		}
	}
	e.clearDrag()
}

// RightPress closes the polygon under construction. With fewer than three
// vertices nothing commits and the gesture stays alive.
func (e *Editor) RightPress(p geom.Point) {
	next, committed := completePolygon(e.gesture, e.style)
	e.gesture = next
	if committed != nil {
		e.commit(committed)
		return
	}
	if _, pending := e.gesture.(gesturePolygon); pending {
		e.logger.Debug("polygon close rejected", "need", minPolygonVertices)
		e.statusf("polygon needs %d points", minPolygonVertices)
	}
}

func (e *Editor) clearDrag() {
	e.moving = false
	e.resizing = false
	e.sweeping = false
	e.handle = ""
	e.resizeRect = nil
	e.resizeStart = nil
	e.endpointLine = nil
	e.endpointIdx = -1
	e.endpointStart = nil
	e.dragShapes = nil
	e.dragStart = nil
	e.moved = false
}

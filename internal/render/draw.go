package render

import (
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

// handleHalf is half the side of a selection/resize handle square, so a
// handle spans ~10px and matches the editor's ±5px handle hit tolerance.
const handleHalf = 5

// snapMarkerArm is the arm length of the snap marker cross.
const snapMarkerArm = 5

// previewCloseDash is the dash pattern of the polygon preview's implicit
// closing edge.
var previewCloseDash = []float64{4, 4}

// Decor carries theme-resolved colors for editing decorations.
type Decor struct {
	Selection  string
	HandleFill string
	SnapMarker string
	Preview    string
}

// DefaultDecor is the classic decoration scheme: blue outlines, white
// handle fill, red snap marker.
func DefaultDecor() Decor {
	return Decor{Selection: "blue", HandleFill: "white", SnapMarker: "red", Preview: "gray"}
}

// StyleFrom converts a shape's committed style to a surface style.
func StyleFrom(st shape.Style) Style {
	return Style{Color: st.Color, Width: float64(st.Width), Dash: st.Dash}
}

// DrawShape draws one committed shape with its own style and returns the
// handle. The dispatch is exhaustive over the variant set.
func DrawShape(s Surface, sh shape.Shape, tags ...string) Handle {
	st := StyleFrom(sh.Style())
	switch v := sh.(type) {
	case *shape.Line:
		return s.Line(v.Start(), v.End(), st, tags...)
	case *shape.Rect:
		return s.Rect(v.Bounds(), st, tags...)
	case *shape.Circle:
		return s.Oval(v.Bounds(), st, tags...)
	case *shape.Polygon:
		return s.Polyline(v.Vertices(), true, st, tags...)
	}
	return 0
}

// DrawSelection decorates a selected shape: the geometry restroked in the
// selection color two pixels wider than its own stroke, plus ~10px square
// handles. Rectangle handles carry the resize tag; everything else is
// outline-only decoration.
func DrawSelection(s Surface, sh shape.Shape, d Decor) {
	outline := Style{Color: d.Selection, Width: float64(sh.Style().Width) + 2}
	switch v := sh.(type) {
	case *shape.Line:
		s.Line(v.Start(), v.End(), outline, TagSelectionOutline)
		drawHandle(s, v.Start(), d, TagSelectionOutline)
		drawHandle(s, v.End(), d, TagSelectionOutline)
		drawHandle(s, v.Start().Mid(v.End()), d, TagSelectionOutline)
	case *shape.Rect:
		s.Rect(v.Bounds(), outline, TagSelectionOutline)
		for _, a := range shape.ResizeAnchors(v.Bounds()) {
			drawHandle(s, a.P, d, TagResizeHandle)
		}
	case *shape.Circle:
		s.Oval(v.Bounds(), outline, TagSelectionOutline)
		drawHandle(s, v.Center(), d, TagSelectionOutline)
	case *shape.Polygon:
		s.Polyline(v.Vertices(), true, outline, TagSelectionOutline)
		for _, p := range v.Vertices() {
			drawHandle(s, p, d, TagSelectionOutline)
		}
	}
}

func drawHandle(s Surface, at geom.Point, d Decor, tag string) {
	box := geom.NewBoundingBox(
		at.Translate(-handleHalf, -handleHalf),
		at.Translate(handleHalf, handleHalf),
	)
	s.Rect(box, Style{Color: d.Selection, Width: 1, Fill: d.HandleFill}, tag)
}

// DrawPreview draws the in-progress two-point shape from its first point
// and the current (snapped) pointer, under the preview tag.
func DrawPreview(s Surface, tool shape.Kind, first, cursor geom.Point, st shape.Style) {
	style := StyleFrom(st)
	switch tool {
	case shape.KindLine:
		s.Line(first, cursor, style, TagPreview)
	case shape.KindRect:
		s.Rect(geom.NewBoundingBox(first, cursor), style, TagPreview)
	case shape.KindCircle:
		r := first.Distance(cursor)
		box := geom.NewBoundingBox(first.Translate(-r, -r), first.Translate(r, r))
		s.Oval(box, style, TagPreview)
	}
}

// DrawPolygonPreview draws the accumulated vertices through the cursor as
// an open polyline plus a dashed closing edge back to the first vertex.
func DrawPolygonPreview(s Surface, pts []geom.Point, cursor geom.Point, st shape.Style) {
	if len(pts) == 0 {
		return
	}
	style := StyleFrom(st)
	line := append(append([]geom.Point{}, pts...), cursor)
	s.Polyline(line, false, style, TagPreview)

	closing := style
	closing.Dash = previewCloseDash
	s.Line(cursor, pts[0], closing, TagPreview)
}

// DrawSnapMarker draws the red cross showing where the pointer snapped.
func DrawSnapMarker(s Surface, at geom.Point, d Decor) Handle {
	return s.Cross(at, snapMarkerArm, Style{Color: d.SnapMarker, Width: 1}, TagSnapMarker)
}

// Package render is the drawing side of the editor: a retained display
// list rasterized through gg, addressed by handles and tags the way the
// editing code expects. Committed shapes, previews, selection decoration
// and the snap marker all land here; the editor only ever talks to the
// Surface interface.
package render

import "github.com/example/vecdraw/internal/geom"

// Handle identifies one drawn element on a Surface.
type Handle int

// Tags group transient elements so they can be bulk-cleared without
// touching committed shapes.
const (
	TagPreview             = "preview"
	TagSelectionOutline    = "selection_outline"
	TagResizeHandle        = "resize_handle"
	TagSnapMarker          = "snap_marker"
	TagAnnotationHighlight = "annotation_highlight"
)

// Style controls how one element is stroked. Color and Fill accept a
// palette name ("black", "red", ...) or a #rrggbb hex string. An empty
// Fill leaves the element unfilled; an empty Dash strokes solid. Size is
// the font size for text elements.
type Style struct {
	Color string
	Width float64
	Dash  []float64
	Fill  string
	Size  float64
}

// Surface is the render contract the editing code draws against. Every
// draw call returns a handle; tags passed at draw time allow group
// deletion and lookup later.
type Surface interface {
	Line(a, b geom.Point, s Style, tags ...string) Handle
	Rect(box geom.BoundingBox, s Style, tags ...string) Handle
	Oval(box geom.BoundingBox, s Style, tags ...string) Handle
	Polyline(pts []geom.Point, closed bool, s Style, tags ...string) Handle
	Cross(center geom.Point, arm float64, s Style, tags ...string) Handle
	Text(at geom.Point, content string, s Style, tags ...string) Handle

	Delete(h Handle)
	DeleteTag(tag string)
	FindTag(tag string) []Handle
	// BoundsOf reports the axis-aligned box of a drawn element; text
	// elements are measured with their face. False when h is gone.
	BoundsOf(h Handle) (geom.BoundingBox, bool)
	Clear()
}

// HandleTable maps model identities (shapes, annotations) to the handle
// they were last drawn with. A full repaint rebuilds it wholesale, so the
// table never outlives one frame of truth.
type HandleTable struct {
	m map[any]Handle
}

func NewHandleTable() *HandleTable {
	return &HandleTable{m: map[any]Handle{}}
}

func (t *HandleTable) Set(owner any, h Handle) { t.m[owner] = h }

func (t *HandleTable) Get(owner any) (Handle, bool) {
	h, ok := t.m[owner]
	return h, ok
}

func (t *HandleTable) Drop(owner any) { delete(t.m, owner) }

func (t *HandleTable) Reset() { clear(t.m) }

package annotate

import (
	"testing"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/render"
)

func TestManagerAddAssignsSequentialIDs(t *testing.T) {
	m := NewManager(nil)
	a := NewLine(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle())
	b := NewRect(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle())
	if got := m.Add(a); got != 1 {
		t.Fatalf("first id = %d, want 1", got)
	}
	if got := m.Add(b); got != 2 {
		t.Fatalf("second id = %d, want 2", got)
	}
	if a.ID() != 1 || b.ID() != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a.ID(), b.ID())
	}
}

func TestSelectAtNearestCornerWins(t *testing.T) {
	m := NewManager(nil)
	bottom := NewRect(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle())
	top := NewRect(geom.Pt(50, 50), geom.Pt(300, 300), DefaultStyle())
	m.Add(bottom)
	m.Add(top)

	// (95,95) is inside both, but much closer to bottom's max corner than
	// to either of top's corners.
	got := m.SelectAt(geom.Pt(95, 95), false)
	if got != Annotation(bottom) {
		t.Fatalf("SelectAt picked %v, want bottom rect", got)
	}
	if !bottom.Selected() || top.Selected() {
		t.Errorf("selected = bottom:%v top:%v, want bottom only", bottom.Selected(), top.Selected())
	}
}

func TestSelectAtStickySelection(t *testing.T) {
	m := NewManager(nil)
	bottom := NewRect(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle())
	top := NewRect(geom.Pt(50, 50), geom.Pt(300, 300), DefaultStyle())
	m.Add(bottom)
	m.Add(top)
	top.SetSelected(true)

	// top is already selected and under the pointer, so it wins even
	// though bottom's corner is nearer.
	got := m.SelectAt(geom.Pt(95, 95), false)
	if got != Annotation(top) {
		t.Fatalf("SelectAt = %v, want the already selected rect", got)
	}
	if bottom.Selected() {
		t.Error("bottom became selected on a sticky hit")
	}
}

func TestSelectAtCtrlTogglesMembership(t *testing.T) {
	m := NewManager(nil)
	a := NewLine(geom.Pt(0, 50), geom.Pt(100, 50), DefaultStyle())
	b := NewLine(geom.Pt(0, 200), geom.Pt(100, 200), DefaultStyle())
	m.Add(a)
	m.Add(b)
	a.SetSelected(true)

	// Ctrl-click on a selected annotation removes it from the selection.
	if got := m.SelectAt(geom.Pt(50, 50), true); got != nil {
		t.Fatalf("ctrl toggle returned %v, want nil", got)
	}
	if a.Selected() {
		t.Fatal("a still selected after ctrl toggle")
	}

	// Ctrl-click adds without clearing what is already selected.
	a.SetSelected(true)
	if got := m.SelectAt(geom.Pt(50, 200), true); got != Annotation(b) {
		t.Fatalf("ctrl add returned %v, want b", got)
	}
	if !a.Selected() || !b.Selected() {
		t.Errorf("selection = a:%v b:%v, want both", a.Selected(), b.Selected())
	}
}

func TestSelectAtMissClearsUnlessCtrl(t *testing.T) {
	m := NewManager(nil)
	a := NewRect(geom.Pt(0, 0), geom.Pt(50, 50), DefaultStyle())
	m.Add(a)
	a.SetSelected(true)

	m.SelectAt(geom.Pt(500, 500), true)
	if !a.Selected() {
		t.Fatal("ctrl miss cleared the selection")
	}
	m.SelectAt(geom.Pt(500, 500), false)
	if a.Selected() {
		t.Fatal("plain miss kept the selection")
	}
}

func TestSelectMultipleSkipsSelected(t *testing.T) {
	m := NewManager(nil)
	bottom := NewRect(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle())
	top := NewRect(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle())
	m.Add(bottom)
	m.Add(top)
	top.SetSelected(true)

	// top already belongs to the selection, so the same point now reaches
	// the annotation under it.
	added := m.SelectMultiple([]geom.Point{geom.Pt(50, 50)})
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
	if !bottom.Selected() {
		t.Error("point under a selected annotation did not reach the one below")
	}
}

func TestMoveSelectedKeepsHorizontalLock(t *testing.T) {
	m := NewManager(nil)
	l := NewLine(geom.Pt(10, 50), geom.Pt(200, 51), DefaultStyle())
	if !l.Horizontal() {
		t.Fatal("line created within the level threshold is not locked")
	}
	m.Add(l)
	l.SetSelected(true)

	if n := m.MoveSelected(5, 30); n != 1 {
		t.Fatalf("moved = %d, want 1", n)
	}
	if l.Start() != geom.Pt(15, 80) {
		t.Errorf("start = %v, want (15,80)", l.Start())
	}
	if l.End().Y != l.Start().Y {
		t.Errorf("end.Y = %v, want locked to start.Y %v", l.End().Y, l.Start().Y)
	}
}

func TestSlantedLineMovesFreely(t *testing.T) {
	l := NewLine(geom.Pt(0, 0), geom.Pt(10, 5), DefaultStyle())
	if l.Horizontal() {
		t.Fatal("slanted line reported horizontal")
	}
	l.Move(0, 10)
	if l.End() != geom.Pt(10, 15) {
		t.Errorf("end = %v, want (10,15)", l.End())
	}
}

func TestDeleteSelected(t *testing.T) {
	m := NewManager(nil)
	a := NewRect(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle())
	b := NewRect(geom.Pt(20, 20), geom.Pt(30, 30), DefaultStyle())
	c := NewRect(geom.Pt(40, 40), geom.Pt(50, 50), DefaultStyle())
	m.Add(a)
	m.Add(b)
	m.Add(c)
	a.SetSelected(true)
	c.SetSelected(true)

	if n := m.DeleteSelected(); n != 2 {
		t.Fatalf("deleted = %d, want 2", n)
	}
	if m.Len() != 1 || m.All()[0] != Annotation(b) {
		t.Errorf("remaining = %v, want only the middle rect", m.All())
	}
}

func TestRemoveByIdentity(t *testing.T) {
	m := NewManager(nil)
	a := NewRect(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle())
	m.Add(a)
	other := NewRect(geom.Pt(0, 0), geom.Pt(10, 10), DefaultStyle())
	if m.Remove(other) {
		t.Fatal("removed an annotation that was never added")
	}
	if !m.Remove(a) {
		t.Fatal("failed to remove an added annotation")
	}
	if m.Len() != 0 {
		t.Errorf("len = %d after remove, want 0", m.Len())
	}
}

func TestAnnotatorDragCreatesShiftLockedLine(t *testing.T) {
	m := NewManager(nil)
	an := NewAnnotator(m)
	an.Begin(geom.Pt(10, 20), true)
	an.Update(geom.Pt(40, 35))
	a := an.End(geom.Pt(60, 45))
	if a == nil {
		t.Fatal("drag produced no annotation")
	}
	l, ok := a.(*Line)
	if !ok {
		t.Fatalf("drag produced %T, want *Line", a)
	}
	if l.Start() != geom.Pt(10, 20) || l.End() != geom.Pt(60, 20) {
		t.Errorf("line = %v-%v, want (10,20)-(60,20)", l.Start(), l.End())
	}
	if !l.Horizontal() {
		t.Error("shift-locked line is not horizontal")
	}
	if m.Len() != 1 {
		t.Errorf("manager holds %d annotations, want 1", m.Len())
	}
}

func TestAnnotatorClickWithoutDragCreatesNothing(t *testing.T) {
	m := NewManager(nil)
	an := NewAnnotator(m)
	an.Begin(geom.Pt(5, 5), false)
	if a := an.End(geom.Pt(5, 5)); a != nil {
		t.Fatalf("stationary release created %v", a)
	}
	if m.Len() != 0 {
		t.Errorf("manager holds %d annotations, want 0", m.Len())
	}
}

func TestAnnotatorRectNormalizesCorners(t *testing.T) {
	m := NewManager(nil)
	an := NewAnnotator(m)
	an.SetTool(ToolRect)
	an.Begin(geom.Pt(80, 90), false)
	a := an.End(geom.Pt(20, 30))
	r, ok := a.(*Rect)
	if !ok {
		t.Fatalf("drag produced %T, want *Rect", a)
	}
	b := r.Bounds()
	if b.Min != geom.Pt(20, 30) || b.Max != geom.Pt(80, 90) {
		t.Errorf("bounds = %v, want (20,30)-(80,90)", b)
	}
}

func TestAnnotatorSelectToolDoesNotDrag(t *testing.T) {
	an := NewAnnotator(NewManager(nil))
	an.SetTool(ToolSelect)
	an.Begin(geom.Pt(0, 0), false)
	if an.Dragging() {
		t.Fatal("select tool started a creation drag")
	}
}

func TestPlaceText(t *testing.T) {
	m := NewManager(nil)
	an := NewAnnotator(m)
	if got := an.PlaceText(geom.Pt(10, 10), ""); got != nil {
		t.Fatalf("empty text produced %v", got)
	}
	txt := an.PlaceText(geom.Pt(10, 10), "lgtm")
	if txt == nil {
		t.Fatal("text placement produced nothing")
	}
	if txt.FontSize() != DefaultFontSize {
		t.Errorf("font size = %v, want %v", txt.FontSize(), DefaultFontSize)
	}
	if m.Len() != 1 {
		t.Errorf("manager holds %d annotations, want 1", m.Len())
	}
}

func TestTextMeasuredOnFirstDraw(t *testing.T) {
	m := NewManager(nil)
	txt := NewText(geom.Pt(50, 40), "hello world", DefaultStyle(), 0)
	m.Add(txt)

	probe := geom.Pt(70, 45)
	if txt.Contains(probe, hitThreshold) {
		t.Fatal("unmeasured text already claims points beyond its anchor")
	}

	canvas := render.NewCanvas(400, 300)
	m.DrawAll(canvas, render.DefaultDecor())

	if !txt.Measured() {
		t.Fatal("text not measured after first draw")
	}
	if !txt.Contains(probe, hitThreshold) {
		t.Errorf("measured text %v does not cover %v", txt.Bounds(), probe)
	}
}

func TestDrawAllHighlightsSelectedOnly(t *testing.T) {
	m := NewManager(nil)
	a := NewLine(geom.Pt(0, 0), geom.Pt(100, 100), DefaultStyle())
	b := NewRect(geom.Pt(10, 10), geom.Pt(40, 40), DefaultStyle())
	m.Add(a)
	m.Add(b)
	a.SetSelected(true)

	canvas := render.NewCanvas(200, 200)
	m.DrawAll(canvas, render.DefaultDecor())

	if got := len(canvas.FindTag(render.TagAnnotationHighlight)); got != 1 {
		t.Errorf("highlight outlines = %d, want 1", got)
	}
}

func TestPreviewTagged(t *testing.T) {
	m := NewManager(nil)
	an := NewAnnotator(m)
	canvas := render.NewCanvas(200, 200)

	an.Preview(canvas)
	if got := len(canvas.FindTag(render.TagPreview)); got != 0 {
		t.Fatalf("idle annotator drew %d preview elements", got)
	}

	an.Begin(geom.Pt(10, 10), false)
	an.Update(geom.Pt(50, 50))
	an.Preview(canvas)
	if got := len(canvas.FindTag(render.TagPreview)); got != 1 {
		t.Errorf("preview elements = %d, want 1", got)
	}
}

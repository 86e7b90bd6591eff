package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/example/vecdraw/internal/geom"
)

func TestCanvasHandlesAreUnique(t *testing.T) {
	c := NewCanvas(100, 100)
	seen := map[Handle]bool{}
	for i := 0; i < 10; i++ {
		h := c.Line(geom.Pt(0, float64(i)), geom.Pt(10, float64(i)), Style{Color: "black", Width: 1})
		if seen[h] {
			t.Fatalf("handle %d issued twice", h)
		}
		seen[h] = true
	}
}

func TestCanvasTagLookupAndDelete(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Line(geom.Pt(0, 0), geom.Pt(10, 10), Style{Color: "black", Width: 1})
	p1 := c.Line(geom.Pt(0, 0), geom.Pt(5, 5), Style{Color: "gray", Width: 1}, TagPreview)
	p2 := c.Rect(geom.NewBoundingBox(geom.Pt(0, 0), geom.Pt(5, 5)), Style{Color: "gray", Width: 1}, TagPreview)

	got := c.FindTag(TagPreview)
	if len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Fatalf("FindTag(preview) = %v, want [%d %d]", got, p1, p2)
	}

	c.DeleteTag(TagPreview)
	if left := c.FindTag(TagPreview); len(left) != 0 {
		t.Fatalf("preview handles survived DeleteTag: %v", left)
	}
	if _, ok := c.BoundsOf(p1); ok {
		t.Fatal("deleted element still has bounds")
	}
}

func TestCanvasDeleteByHandle(t *testing.T) {
	c := NewCanvas(100, 100)
	h := c.Line(geom.Pt(0, 0), geom.Pt(10, 10), Style{Color: "black", Width: 1})
	keep := c.Line(geom.Pt(0, 5), geom.Pt(10, 5), Style{Color: "black", Width: 1})

	c.Delete(h)
	if _, ok := c.BoundsOf(h); ok {
		t.Fatal("deleted handle still resolvable")
	}
	if _, ok := c.BoundsOf(keep); !ok {
		t.Fatal("unrelated handle vanished")
	}
}

func TestCanvasBoundsOfGeometry(t *testing.T) {
	c := NewCanvas(200, 200)
	h := c.Line(geom.Pt(30, 80), geom.Pt(120, 20), Style{Color: "black", Width: 1})
	box, ok := c.BoundsOf(h)
	if !ok {
		t.Fatal("no bounds for drawn line")
	}
	want := geom.NewBoundingBox(geom.Pt(30, 20), geom.Pt(120, 80))
	if box != want {
		t.Fatalf("bounds = %v, want %v", box, want)
	}
}

func TestCanvasBoundsOfTextIsMeasured(t *testing.T) {
	c := NewCanvas(200, 200)
	h := c.Text(geom.Pt(10, 20), "Hello", Style{Color: "black", Size: 12})
	box, ok := c.BoundsOf(h)
	if !ok {
		t.Fatal("no bounds for text")
	}
	if box.Min != geom.Pt(10, 20) {
		t.Fatalf("text bounds anchored at %v, want (10,20)", box.Min)
	}
	if box.Width() <= 0 || box.Height() <= 0 {
		t.Fatalf("text bounds %v not measured", box)
	}
}

func TestCanvasImagePaintsStrokes(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Line(geom.Pt(0, 50), geom.Pt(100, 50), Style{Color: "black", Width: 4})

	img := c.Image()
	if got := img.Bounds(); got.Dx() != 100 || got.Dy() != 100 {
		t.Fatalf("image bounds = %v, want 100x100", got)
	}
	r, g, b, _ := img.At(50, 50).RGBA()
	if r > 0x4000 || g > 0x4000 || b > 0x4000 {
		t.Fatalf("pixel under the stroke is not dark: %v", img.At(50, 50))
	}
	r, _, _, _ = img.At(50, 10).RGBA()
	if r < 0xc000 {
		t.Fatalf("background pixel is not white: %v", img.At(50, 10))
	}
}

func TestCanvasImageCompositesUnderlay(t *testing.T) {
	under := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(under, under.Bounds(), image.NewUniform(color.RGBA{R: 0xff, A: 0xff}), image.Point{}, draw.Src)

	c := NewCanvas(100, 100, WithUnderlay(under))
	img := c.Image()
	r, g, _, _ := img.At(5, 5).RGBA()
	if r < 0xc000 || g > 0x4000 {
		t.Fatalf("underlay not visible, pixel = %v", img.At(5, 5))
	}
}

func TestCanvasClearEmptiesDisplayList(t *testing.T) {
	c := NewCanvas(50, 50)
	c.Line(geom.Pt(0, 0), geom.Pt(10, 10), Style{Color: "black", Width: 1}, TagPreview)
	c.Clear()
	if handles := c.FindTag(TagPreview); len(handles) != 0 {
		t.Fatalf("display list not empty after Clear: %v", handles)
	}
}

package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyShadowGrowsCanvasForOffsetBlur(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(5, 5, color.RGBA{R: 255, A: 255})

	out := ApplyShadow(img, ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5})
	if want := image.Rect(0, 0, 22, 20); !out.Bounds().Eq(want) {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), want)
	}
	if got := out.RGBAAt(5, 5); got.R != 255 || got.A != 255 {
		t.Fatalf("subject pixel = %+v, want opaque red", got)
	}
	if out.RGBAAt(13, 11).A == 0 {
		t.Fatal("no shadow alpha at the offset location")
	}
}

func TestApplyShadowZeroOpacityReturnsInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if out := ApplyShadow(img, ShadowOptions{Radius: 12, Offset: image.Pt(20, 10)}); out != img {
		t.Fatal("zero opacity should hand back the original image")
	}
}

func TestApplyShadowBlursSilhouette(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{A: 255})

	out := ApplyShadow(img, ShadowOptions{Radius: 2, Offset: image.Pt(3, 0), Opacity: 1})
	if want := image.Rect(0, 0, 7, 6); !out.Bounds().Eq(want) {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), want)
	}
	// The shadow sticks out above the drawing, so both shift down to keep
	// a zero-based origin.
	if out.RGBAAt(0, 2).A != 255 {
		t.Fatalf("subject pixel missing at (0,2): %+v", out.RGBAAt(0, 2))
	}
	if out.RGBAAt(3, 2).A == 0 {
		t.Fatal("no shadow alpha under the offset")
	}
	if out.RGBAAt(5, 2).A == 0 {
		t.Fatal("blur did not spread alpha sideways")
	}
	if a := out.RGBAAt(6, 5).A; a != 0 {
		t.Fatalf("alpha %d beyond the blur reach, want none", a)
	}
}

func TestApplyShadowNilAndEmptyPassThrough(t *testing.T) {
	if out := ApplyShadow(nil, DefaultShadowOptions()); out != nil {
		t.Fatalf("nil image: got %v, want nil", out)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if out := ApplyShadow(empty, DefaultShadowOptions()); out != empty {
		t.Fatal("empty image should come back unchanged")
	}
}

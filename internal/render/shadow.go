package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow composited under an exported
// drawing.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions is the preset behind the draw command's -shadow
// flag.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  24,
		Offset:  image.Pt(16, 16),
		Opacity: 0.55,
	}
}

// ApplyShadow composites img onto an expanded canvas with a blurred drop
// shadow behind it. The canvas grows just enough to hold the offset blur
// and keeps a zero-based origin. A nil image, empty bounds, or
// non-positive opacity returns the input untouched.
func ApplyShadow(img *image.RGBA, opts ShadowOptions) *image.RGBA {
	if img == nil || img.Bounds().Empty() || opts.Opacity <= 0 {
		return img
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	src := img.Bounds()
	padded := src
	if radius > 0 {
		padded = padded.Inset(-radius)
	}
	shadow := padded.Add(opts.Offset)
	composite := src.Union(shadow)
	out := composite.Sub(composite.Min)
	if out.Empty() {
		return img
	}

	// The shadow silhouette is the image's alpha channel, rebased into the
	// padded box so the blur has room to bleed outward.
	mask := image.NewAlpha(padded.Sub(padded.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0 {
				mask.SetAlpha(x-padded.Min.X, y-padded.Min.Y, color.Alpha{A: a})
			}
		}
	}
	blurred := boxBlur(mask, radius)

	dst := image.NewRGBA(out)
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	tint := color.RGBA{A: uint8(opacity*255 + 0.5)}
	draw.DrawMask(dst, blurred.Bounds().Add(shadow.Min.Sub(composite.Min)),
		image.NewUniform(tint), image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
	draw.Draw(dst, src.Sub(composite.Min), img, src.Min, draw.Over)
	return dst
}

// boxBlur runs one horizontal and one vertical mean pass over the mask.
// Prefix sums keep each pass linear in the pixel count regardless of the
// radius.
func boxBlur(src *image.Alpha, radius int) *image.Alpha {
	if radius <= 0 {
		out := image.NewAlpha(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewAlpha(src.Bounds())
	dst := image.NewAlpha(src.Bounds())

	for y := 0; y < h; y++ {
		row := y * src.Stride
		prefix := make([]int, w+1)
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[row+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}

	for x := 0; x < w; x++ {
		prefix := make([]int, h+1)
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}

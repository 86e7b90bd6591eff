package render

import (
	"image"
	"image/draw"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/vecdraw/internal/geom"
)

// DefaultTextSize is used for text elements whose style carries no size.
const DefaultTextSize = 12

type nodeKind int

const (
	nodeLine nodeKind = iota
	nodeRect
	nodeOval
	nodePolyline
	nodeCross
	nodeText
)

// node is one retained element of the display list.
type node struct {
	id     Handle
	kind   nodeKind
	tags   []string
	pts    []geom.Point
	closed bool
	style  Style
	text   string
}

// Canvas implements Surface as a display list replayed through gg on every
// Image call. Text is drawn with an opentype Go Regular face on top of the
// rasterized strokes.
type Canvas struct {
	width, height int
	background    string
	underlay      image.Image

	nodes []*node
	next  Handle

	faceMu sync.Mutex
	faces  map[float64]font.Face
}

var _ Surface = (*Canvas)(nil)

// CanvasOption configures a Canvas at creation.
type CanvasOption func(*Canvas)

// WithBackground sets the color the canvas is cleared to before drawing.
func WithBackground(color string) CanvasOption {
	return func(c *Canvas) { c.background = color }
}

// WithUnderlay composites img beneath all drawn elements.
func WithUnderlay(img image.Image) CanvasOption {
	return func(c *Canvas) { c.underlay = img }
}

// NewCanvas creates an empty canvas of the given pixel size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		width:      width,
		height:     height,
		background: "white",
		faces:      map[float64]font.Face{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// SetUnderlay replaces the background image.
func (c *Canvas) SetUnderlay(img image.Image) { c.underlay = img }

func (c *Canvas) add(kind nodeKind, pts []geom.Point, closed bool, s Style, text string, tags []string) Handle {
	c.next++
	n := &node{
		id:     c.next,
		kind:   kind,
		tags:   tags,
		pts:    pts,
		closed: closed,
		style:  s,
		text:   text,
	}
	c.nodes = append(c.nodes, n)
	return n.id
}

func (c *Canvas) Line(a, b geom.Point, s Style, tags ...string) Handle {
	return c.add(nodeLine, []geom.Point{a, b}, false, s, "", tags)
}

func (c *Canvas) Rect(box geom.BoundingBox, s Style, tags ...string) Handle {
	return c.add(nodeRect, []geom.Point{box.Min, box.Max}, true, s, "", tags)
}

func (c *Canvas) Oval(box geom.BoundingBox, s Style, tags ...string) Handle {
	return c.add(nodeOval, []geom.Point{box.Min, box.Max}, true, s, "", tags)
}

func (c *Canvas) Polyline(pts []geom.Point, closed bool, s Style, tags ...string) Handle {
	cp := make([]geom.Point, len(pts))
	copy(cp, pts)
	return c.add(nodePolyline, cp, closed, s, "", tags)
}

func (c *Canvas) Cross(center geom.Point, arm float64, s Style, tags ...string) Handle {
	pts := []geom.Point{
		center,
		geom.Pt(center.X-arm, center.Y),
		geom.Pt(center.X+arm, center.Y),
		geom.Pt(center.X, center.Y-arm),
		geom.Pt(center.X, center.Y+arm),
	}
	return c.add(nodeCross, pts, false, s, "", tags)
}

func (c *Canvas) Text(at geom.Point, content string, s Style, tags ...string) Handle {
	return c.add(nodeText, []geom.Point{at}, false, s, content, tags)
}

func (c *Canvas) Delete(h Handle) {
	for i, n := range c.nodes {
		if n.id == h {
			c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
			return
		}
	}
}

func (c *Canvas) DeleteTag(tag string) {
	kept := c.nodes[:0]
	for _, n := range c.nodes {
		if !n.hasTag(tag) {
			kept = append(kept, n)
		}
	}
	c.nodes = kept
}

func (c *Canvas) FindTag(tag string) []Handle {
	var out []Handle
	for _, n := range c.nodes {
		if n.hasTag(tag) {
			out = append(out, n.id)
		}
	}
	return out
}

func (c *Canvas) Clear() {
	c.nodes = c.nodes[:0]
}

func (n *node) hasTag(tag string) bool {
	for _, t := range n.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BoundsOf returns the axis-aligned box around a drawn element. Text is
// measured with its face: the box spans from the anchor (top-left) to
// anchor plus the rendered string's advance and line height.
func (c *Canvas) BoundsOf(h Handle) (geom.BoundingBox, bool) {
	for _, n := range c.nodes {
		if n.id != h {
			continue
		}
		if n.kind == nodeText {
			face, err := c.face(n.style.textSize())
			if err != nil {
				return geom.BoundingBox{}, false
			}
			w := font.MeasureString(face, n.text).Ceil()
			m := face.Metrics()
			at := n.pts[0]
			return geom.NewBoundingBox(at, at.Translate(float64(w), float64(m.Ascent.Ceil()+m.Descent.Ceil()))), true
		}
		return geom.BoundingBoxOf(n.pts), true
	}
	return geom.BoundingBox{}, false
}

func (s Style) textSize() float64 {
	if s.Size <= 0 {
		return DefaultTextSize
	}
	return s.Size
}

// Image rasterizes the display list: background color, then the underlay,
// then strokes in insertion order through gg, then text elements on top.
func (c *Canvas) Image() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(out, out.Bounds(), image.NewUniform(ResolveColor(c.background)), image.Point{}, draw.Src)
	if c.underlay != nil {
		draw.Draw(out, out.Bounds(), c.underlay, c.underlay.Bounds().Min, draw.Over)
	}

	ctx := gg.NewContext(c.width, c.height)
	for _, n := range c.nodes {
		if n.kind == nodeText {
			continue
		}
		c.rasterize(ctx, n)
	}
	strokes := ctx.Image()
	draw.Draw(out, out.Bounds(), strokes, strokes.Bounds().Min, draw.Over)

	for _, n := range c.nodes {
		if n.kind == nodeText {
			c.drawText(out, n)
		}
	}
	return out
}

func (c *Canvas) rasterize(ctx *gg.Context, n *node) {
	if n.style.Fill != "" {
		ctx.ClearDash()
		ctx.SetColor(ResolveColor(n.style.Fill))
		c.tracePath(ctx, n)
		ctx.Fill()
	}

	ctx.SetColor(ResolveColor(n.style.Color))
	ctx.SetLineWidth(n.style.strokeWidth())
	if len(n.style.Dash) > 0 {
		ctx.SetDash(n.style.Dash...)
	} else {
		ctx.ClearDash()
	}
	c.tracePath(ctx, n)
	ctx.Stroke()
}

func (s Style) strokeWidth() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

func (c *Canvas) tracePath(ctx *gg.Context, n *node) {
	switch n.kind {
	case nodeLine:
		ctx.DrawLine(n.pts[0].X, n.pts[0].Y, n.pts[1].X, n.pts[1].Y)
	case nodeRect:
		min, max := n.pts[0], n.pts[1]
		ctx.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	case nodeOval:
		min, max := n.pts[0], n.pts[1]
		cx, cy := (min.X+max.X)/2, (min.Y+max.Y)/2
		ctx.DrawEllipse(cx, cy, (max.X-min.X)/2, (max.Y-min.Y)/2)
	case nodePolyline:
		ctx.MoveTo(n.pts[0].X, n.pts[0].Y)
		for _, p := range n.pts[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		if n.closed {
			ctx.ClosePath()
		}
	case nodeCross:
		ctx.MoveTo(n.pts[1].X, n.pts[1].Y)
		ctx.LineTo(n.pts[2].X, n.pts[2].Y)
		ctx.MoveTo(n.pts[3].X, n.pts[3].Y)
		ctx.LineTo(n.pts[4].X, n.pts[4].Y)
	}
}

func (c *Canvas) drawText(dst *image.RGBA, n *node) {
	face, err := c.face(n.style.textSize())
	if err != nil {
		return
	}
	at := n.pts[0]
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ResolveColor(n.style.Color)),
		Face: face,
		Dot:  fixed.P(int(at.X), int(at.Y)+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(n.text)
}

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	fontErr     error
)

func regular() (*opentype.Font, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
	})
	return regularFont, fontErr
}

func (c *Canvas) face(size float64) (font.Face, error) {
	c.faceMu.Lock()
	defer c.faceMu.Unlock()
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := regular()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	c.faces[size] = face
	return face, nil
}

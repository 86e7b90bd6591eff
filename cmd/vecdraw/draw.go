package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/theme"
	"github.com/example/vecdraw/internal/underlay"
)

// drawCmd renders one shape onto an image without opening a window.
type drawCmd struct {
	file          string
	output        string
	toClipboard   bool
	fromClipboard bool
	shadow        bool
	colorSpec     string
	fillSpec      string
	width         int
	dashSpec      string
	dash          []float64
	textSize      float64
	canvasW       int
	canvasH       int
	shape         string
	coords        []float64
	text          string
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

// validColor accepts a palette name or a hex value.
func validColor(spec string) error {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return fmt.Errorf("color cannot be empty")
	}
	if strings.HasPrefix(s, "#") {
		if _, err := theme.ParseColor(s); err != nil {
			return fmt.Errorf("invalid color %q", spec)
		}
		return nil
	}
	for _, name := range render.PaletteNames() {
		if name == s {
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", spec)
}

func parseDash(spec string) ([]float64, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	dash := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid dash segment %q", part)
		}
		dash = append(dash, v)
	}
	return dash, nil
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "image file to draw over")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to the input file)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.BoolVar(&d.fromClipboard, "from-clipboard", false, "draw over the clipboard image instead of a file")
	fs.BoolVar(&d.shadow, "shadow", false, "composite a drop shadow under the result")
	fs.StringVar(&d.colorSpec, "color", "black", "stroke color name or hex value")
	fs.StringVar(&d.fillSpec, "fill", "", "fill color for rect, circle, and polygon")
	fs.IntVar(&d.width, "width", 1, "stroke width in pixels")
	fs.StringVar(&d.dashSpec, "dash", "", "dash pattern, comma separated segment lengths")
	fs.Float64Var(&d.textSize, "text-size", render.DefaultTextSize, "text size in points")
	fs.IntVar(&d.canvasW, "canvas-width", 800, "canvas width when no input file is given")
	fs.IntVar(&d.canvasH, "canvas-height", 600, "canvas height when no input file is given")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch d.shape {
	case "line", "rect":
		d.coords, err = expectFloats(remaining, 4, d.shape)
	case "circle":
		d.coords, err = expectFloats(remaining, 3, d.shape)
	case "polygon":
		if len(remaining) < 6 || len(remaining)%2 != 0 {
			return nil, fmt.Errorf("polygon requires at least 3 x y pairs")
		}
		d.coords, err = expectFloats(remaining, len(remaining), d.shape)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		d.coords, err = expectFloats(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	if err != nil {
		return nil, err
	}
	if err := validColor(d.colorSpec); err != nil {
		return nil, err
	}
	if d.fillSpec != "" {
		if err := validColor(d.fillSpec); err != nil {
			return nil, err
		}
	}
	d.dash, err = parseDash(d.dashSpec)
	if err != nil {
		return nil, err
	}
	if d.shape == "circle" && d.coords[2] <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	if d.file != "" && d.fromClipboard {
		return nil, fmt.Errorf("-file and -from-clipboard cannot be combined")
	}
	if d.file == "" && d.output == "" {
		if d.fromClipboard {
			return nil, fmt.Errorf("output file is required when drawing over the clipboard")
		}
		return nil, fmt.Errorf("output file is required when drawing on a blank canvas")
	}
	if d.output == "" {
		d.output = d.file
	}
	if d.width < 1 {
		d.width = 1
	}
	if d.textSize <= 0 {
		d.textSize = render.DefaultTextSize
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	canvas, err := d.newCanvas()
	if err != nil {
		return err
	}
	if err := d.apply(canvas); err != nil {
		return err
	}
	rgba := canvas.Image()
	if d.shadow {
		rgba = render.ApplyShadow(rgba, render.DefaultShadowOptions())
	}

	out, err := os.Create(d.output)
	if err != nil {
		return err
	}
	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			log.Printf("error closing %q: %v", out.Name(), err)
		}
	}(out)
	if err := png.Encode(out, rgba); err != nil {
		return err
	}
	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	if d.root != nil && d.notifier != nil {
		d.notifier.Save(saved)
	}
	if d.toClipboard {
		if err := clipboard.WriteImage(rgba); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(d.output)
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		if d.root != nil && d.notifier != nil {
			d.notifier.Copy(detail, rgba)
		}
	}
	return nil
}

func (d *drawCmd) newCanvas() (*render.Canvas, error) {
	if d.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		b := img.Bounds()
		return render.NewCanvas(b.Dx(), b.Dy(), render.WithUnderlay(img)), nil
	}
	if d.file == "" {
		return render.NewCanvas(d.canvasW, d.canvasH), nil
	}
	img, err := underlay.FromFile(d.file)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return render.NewCanvas(b.Dx(), b.Dy(), render.WithUnderlay(img)), nil
}

func (d *drawCmd) apply(canvas *render.Canvas) error {
	st := render.Style{Color: d.colorSpec, Width: float64(d.width), Dash: d.dash, Fill: d.fillSpec}
	switch d.shape {
	case "line":
		canvas.Line(geom.Pt(d.coords[0], d.coords[1]), geom.Pt(d.coords[2], d.coords[3]), st)
	case "rect":
		box := geom.NewBoundingBox(geom.Pt(d.coords[0], d.coords[1]), geom.Pt(d.coords[2], d.coords[3]))
		canvas.Rect(box, st)
	case "circle":
		c, r := geom.Pt(d.coords[0], d.coords[1]), d.coords[2]
		canvas.Oval(geom.NewBoundingBox(geom.Pt(c.X-r, c.Y-r), geom.Pt(c.X+r, c.Y+r)), st)
	case "polygon":
		verts := make([]geom.Point, 0, len(d.coords)/2)
		for i := 0; i+1 < len(d.coords); i += 2 {
			verts = append(verts, geom.Pt(d.coords[i], d.coords[i+1]))
		}
		canvas.Polyline(verts, true, st)
	case "text":
		canvas.Text(geom.Pt(d.coords[0], d.coords[1]), d.text, render.Style{
			Color: d.colorSpec,
			Size:  d.textSize,
		})
	default:
		return fmt.Errorf("unhandled shape %q", d.shape)
	}
	return nil
}

func expectFloats(args []string, n int, shape string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d numeric arguments", shape, n)
	}
	vals := make([]float64, n)
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

var drawFlagNames = map[string]struct{}{
	"file":           {},
	"output":         {},
	"to-clipboard":   {},
	"to-clip":        {},
	"from-clipboard": {},
	"shadow":         {},
	"color":          {},
	"fill":           {},
	"width":          {},
	"dash":           {},
	"text-size":      {},
	"canvas-width":   {},
	"canvas-height":  {},
}

var drawBoolFlags = map[string]struct{}{
	"to-clipboard":   {},
	"to-clip":        {},
	"from-clipboard": {},
	"shadow":         {},
}

// splitDrawArgs separates known flags from positionals so flags may follow
// the shape and its coordinates. Negative coordinates stay positional.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}

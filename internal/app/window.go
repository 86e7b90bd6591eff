// Package app hosts the shiny window: it owns the event loop that feeds
// pointer and key input into the drawing editor or the PDF-overlay
// annotator, and blits the rendered canvas plus a status strip each frame.
package app

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/vecdraw/internal/annotate"
	"github.com/example/vecdraw/internal/editor"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/notify"
	"github.com/example/vecdraw/internal/pdfexport"
	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/shape"
	"github.com/example/vecdraw/internal/snap"
	"github.com/example/vecdraw/internal/theme"
)

// Mode selects what the window edits.
type Mode int

const (
	// ModeEdit is the vector drawing surface.
	ModeEdit Mode = iota
	// ModeAnnotate is the PDF overlay: annotations over a page underlay,
	// exported as PDF on save.
	ModeAnnotate
)

const (
	statusHeight   = 24
	statusDuration = 2 * time.Second
)

// Window drives one drawing session. All fields are owned by the event
// loop goroutine; the update channel is the only cross-goroutine path in,
// carrying repaint requests.
type Window struct {
	logger   *slog.Logger
	title    string
	mode     Mode
	theme    *theme.Theme
	decor    render.Decor
	width    int
	height   int
	savePath string
	pdfPath  string
	style    shape.Style
	styleSet bool
	snap     snap.Settings
	snapSet  bool
	underlay image.Image
	notifier *notify.Notifier
	exporter *pdfexport.Exporter
	onClose  func()

	canvas    *render.Canvas
	editor    *editor.Editor
	manager   *annotate.Manager
	annotator *annotate.Annotator
	registry  *Registry

	updateCh  chan struct{}
	closeOnce sync.Once

	winW, winH   int
	message      string
	messageUntil time.Time

	leftDown bool

	// annotate-mode drag and text entry
	movingAnn  bool
	lastAnn    geom.Point
	textActive bool
	textInput  string
	textPos    geom.Point
}

// Option configures a Window at creation.
type Option func(*Window)

// WithLogger sets the structured logger. Nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithTitle sets the window title.
func WithTitle(t string) Option { return func(w *Window) { w.title = t } }

// WithMode selects between drawing and PDF annotation.
func WithMode(m Mode) Option { return func(w *Window) { w.mode = m } }

// WithTheme sets the color theme.
func WithTheme(t *theme.Theme) Option {
	return func(w *Window) {
		if t != nil {
			w.theme = t
		}
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(w *Window) {
		if width > 0 && height > 0 {
			w.width, w.height = width, height
		}
	}
}

// WithUnderlay composites img beneath the canvas, e.g. a rendered PDF
// page or a screenshot.
func WithUnderlay(img image.Image) Option {
	return func(w *Window) { w.underlay = img }
}

// WithSavePath sets where Ctrl+S writes the PNG in edit mode.
func WithSavePath(path string) Option {
	return func(w *Window) {
		if path != "" {
			w.savePath = path
		}
	}
}

// WithPDFPath sets where Ctrl+S writes the PDF in annotate mode.
func WithPDFPath(path string) Option {
	return func(w *Window) {
		if path != "" {
			w.pdfPath = path
		}
	}
}

// WithStyle sets the initial stroke style, overriding the theme default.
func WithStyle(s shape.Style) Option {
	return func(w *Window) {
		w.style = s
		w.styleSet = true
	}
}

// WithSnapSettings sets the snap configuration for edit mode.
func WithSnapSettings(s snap.Settings) Option {
	return func(w *Window) {
		w.snap = s
		w.snapSet = true
	}
}

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option {
	return func(w *Window) {
		if n != nil {
			w.notifier = n
		}
	}
}

// WithExporter sets the PDF exporter used in annotate mode.
func WithExporter(e *pdfexport.Exporter) Option {
	return func(w *Window) {
		if e != nil {
			w.exporter = e
		}
	}
}

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(w *Window) { w.onClose = fn } }

// New builds a window. The canvas, editor or annotation manager, and the
// keyboard bindings are all constructed here, so Run only has to pump
// events.
func New(opts ...Option) *Window {
	w := &Window{
		logger:   slog.New(nopHandler{}),
		title:    "VecDraw",
		mode:     ModeEdit,
		theme:    theme.Default(),
		width:    1024,
		height:   768,
		savePath: "drawing.png",
		pdfPath:  "annotated.pdf",
		notifier: notify.New(notify.DefaultPreferences()),
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(w)
	}

	w.decor = render.Decor{
		Selection:  theme.Hex(w.theme.Selection),
		HandleFill: theme.Hex(w.theme.HandleFill),
		SnapMarker: theme.Hex(w.theme.SnapMarker),
		Preview:    theme.Hex(w.theme.Preview),
	}

	copts := []render.CanvasOption{render.WithBackground(theme.Hex(w.theme.CanvasBackground))}
	if w.underlay != nil {
		copts = append(copts, render.WithUnderlay(w.underlay))
	}
	w.canvas = render.NewCanvas(w.width, w.height, copts...)

	switch w.mode {
	case ModeAnnotate:
		w.manager = annotate.NewManager(w.logger)
		w.annotator = annotate.NewAnnotator(w.manager)
		if w.exporter == nil {
			w.exporter = pdfexport.New(pdfexport.WithLogger(w.logger))
		}
	default:
		if !w.styleSet {
			w.style = shape.DefaultStyle()
			w.style.Color = theme.Hex(w.theme.DefaultStroke)
		}
		eopts := []editor.Option{
			editor.WithLogger(w.logger),
			editor.WithSurface(w.canvas),
			editor.WithDecor(w.decor),
			editor.WithStatusFunc(w.setStatus),
			editor.WithStyle(w.style),
		}
		if w.snapSet {
			eopts = append(eopts, editor.WithSnapSettings(w.snap))
		}
		w.editor = editor.New(eopts...)
	}

	w.registry = NewRegistry(w.logger)
	w.bindShortcuts()

	w.winW = w.width
	w.winH = w.height + statusHeight
	return w
}

// Editor returns the drawing editor, nil in annotate mode.
func (w *Window) Editor() *editor.Editor { return w.editor }

// Manager returns the annotation manager, nil in edit mode.
func (w *Window) Manager() *annotate.Manager { return w.manager }

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

func (w *Window) Main(s screen.Screen) {
	win, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  w.winW,
		Height: w.winH,
		Title:  w.title,
	})
	if err != nil {
		w.logger.Error("new window", "error", err)
		os.Exit(1)
	}
	defer win.Release()
	defer w.notifyClose()

	// Status updates and other off-loop repaint requests arrive on the
	// update channel; forward them as paint events.
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-w.updateCh:
				win.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	for {
		e := win.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			w.winW = e.WidthPx
			w.winH = e.HeightPx
			win.Send(paint.Event{})
		case paint.Event:
			w.drawFrame(s, win)
		case mouse.Event:
			w.handleMouse(win, e)
		case key.Event:
			w.handleKey(win, e)
		}
	}
}

func (w *Window) notifyClose() {
	w.closeOnce.Do(func() {
		if w.onClose != nil {
			w.onClose()
		}
	})
}

// setStatus shows msg in the status strip for a short time. Safe to call
// from editor callbacks during event handling.
func (w *Window) setStatus(msg string) {
	w.message = msg
	w.messageUntil = time.Now().Add(statusDuration)
	w.requestPaint()
}

func (w *Window) requestPaint() {
	select {
	case w.updateCh <- struct{}{}:
	default:
	}
}

func (w *Window) handleMouse(win screen.Window, e mouse.Event) {
	p := geom.Pt(float64(e.X), float64(e.Y))
	ctrl := e.Modifiers&key.ModControl != 0
	shift := e.Modifiers&key.ModShift != 0

	if w.mode == ModeAnnotate {
		w.annotateMouse(p, e, ctrl, shift)
	} else {
		w.editMouse(p, e, ctrl)
	}
	win.Send(paint.Event{})
}

func (w *Window) editMouse(p geom.Point, e mouse.Event, ctrl bool) {
	switch e.Direction {
	case mouse.DirPress:
		switch e.Button {
		case mouse.ButtonLeft:
			w.leftDown = true
			w.editor.Press(p, ctrl)
		case mouse.ButtonRight:
			w.editor.RightPress(p)
		}
	case mouse.DirRelease:
		if e.Button == mouse.ButtonLeft {
			w.leftDown = false
			w.editor.Release(p)
		}
	case mouse.DirNone:
		if w.leftDown {
			w.editor.Drag(p)
		} else {
			w.editor.Motion(p)
		}
	}
}

func (w *Window) annotateMouse(p geom.Point, e mouse.Event, ctrl, shift bool) {
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return
		}
		w.leftDown = true
		switch w.annotator.Tool() {
		case annotate.ToolSelect:
			hit := w.manager.SelectAt(p, ctrl)
			if hit != nil && !ctrl {
				w.movingAnn = true
				w.lastAnn = p
			}
		case annotate.ToolText:
			w.textActive = true
			w.textInput = ""
			w.textPos = p
		default:
			w.annotator.Begin(p, shift)
		}
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return
		}
		w.leftDown = false
		w.movingAnn = false
		if w.annotator.Dragging() {
			if a := w.annotator.End(p); a != nil {
				w.setStatus(fmt.Sprintf("%s added", w.annotator.Tool()))
			}
		}
	case mouse.DirNone:
		if !w.leftDown {
			return
		}
		if w.movingAnn {
			w.manager.MoveSelected(p.X-w.lastAnn.X, p.Y-w.lastAnn.Y)
			w.lastAnn = p
		} else {
			w.annotator.Update(p)
		}
	}
}

func (w *Window) handleKey(win screen.Window, e key.Event) {
	if e.Direction != key.DirPress {
		return
	}
	if w.textActive {
		w.textKey(e)
		win.Send(paint.Event{})
		return
	}
	if w.registry.Handle(e) {
		win.Send(paint.Event{})
	}
}

// textKey accumulates the pending text annotation: printable runes append,
// Backspace trims, Enter commits, Escape abandons.
func (w *Window) textKey(e key.Event) {
	switch e.Code {
	case key.CodeReturnEnter:
		if w.annotator.PlaceText(w.textPos, w.textInput) != nil {
			w.setStatus("text added")
		}
		w.textActive = false
		w.textInput = ""
	case key.CodeEscape:
		w.textActive = false
		w.textInput = ""
	case key.CodeDeleteBackspace:
		if len(w.textInput) > 0 {
			w.textInput = w.textInput[:len(w.textInput)-1]
		}
	default:
		if e.Rune > 0 {
			w.textInput += string(e.Rune)
		}
	}
}

// repaintCanvas rebuilds the display list for the current mode.
func (w *Window) repaintCanvas() {
	if w.mode != ModeAnnotate {
		w.editor.Repaint()
		return
	}
	w.canvas.Clear()
	w.manager.DrawAll(w.canvas, w.decor)
	w.annotator.Preview(w.canvas)
	if w.textActive {
		st := render.Style{Color: w.annotator.Style().Color, Size: w.annotator.FontSize()}
		w.canvas.Text(w.textPos, w.textInput+"|", st, render.TagPreview)
	}
}

func (w *Window) drawFrame(s screen.Screen, win screen.Window) {
	w.repaintCanvas()

	b, err := s.NewBuffer(image.Point{X: w.winW, Y: w.winH})
	if err != nil {
		w.logger.Error("new buffer", "error", err)
		return
	}
	defer b.Release()
	rgba := b.RGBA()

	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(w.theme.Background), image.Point{}, draw.Src)
	img := w.canvas.Image()
	draw.Draw(rgba, img.Bounds(), img, image.Point{}, draw.Src)
	w.drawStatus(rgba)

	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

func (w *Window) drawStatus(rgba *image.RGBA) {
	strip := image.Rect(0, w.winH-statusHeight, w.winW, w.winH)
	draw.Draw(rgba, strip, image.NewUniform(w.theme.StatusBackground), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(w.theme.StatusText),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(6, w.winH-statusHeight+16)
	d.DrawString(w.statusLine())
}

// statusLine shows the transient message while it is fresh, otherwise a
// summary of the active tool and stroke.
func (w *Window) statusLine() string {
	if w.message != "" && time.Now().Before(w.messageUntil) {
		return w.message
	}
	if w.mode == ModeAnnotate {
		st := w.annotator.Style()
		return fmt.Sprintf("annotate  tool: %s  color: %s  width: %g", w.annotator.Tool(), st.Color, st.Width)
	}
	st := w.editor.Style()
	return fmt.Sprintf("tool: %s  color: %s  width: %d%s", w.editor.Tool(), st.Color, st.Width, snapSummary(w.editor.SnapSettings()))
}

func snapSummary(s snap.Settings) string {
	out := ""
	if s.Kinds.Endpoint {
		out += " end"
	}
	if s.Kinds.Midpoint {
		out += " mid"
	}
	if s.Kinds.Intersection {
		out += " isect"
	}
	if s.Kinds.Grid {
		out += " grid"
	}
	if out == "" {
		return "  snap: off"
	}
	return "  snap:" + out
}

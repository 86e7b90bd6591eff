package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"slices"

	"golang.org/x/mobile/event/key"

	"github.com/example/vecdraw/internal/annotate"
	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/editor"
	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/theme"
)

// strokeColors is the palette the color-cycle shortcut walks through.
var strokeColors = []string{"black", "red", "blue", "green", "yellow", "purple"}

func nextColor(current string) string {
	for i, c := range strokeColors {
		if c == current {
			return strokeColors[(i+1)%len(strokeColors)]
		}
	}
	return strokeColors[0]
}

// dashPatterns is the cycle for the dash shortcut: solid, dashed, dotted,
// dash-dot.
var dashPatterns = [][]float64{nil, {5, 5}, {2, 2}, {7, 4, 2, 4}}

func nextDash(current []float64) []float64 {
	for i, d := range dashPatterns {
		if slices.Equal(d, current) {
			return dashPatterns[(i+1)%len(dashPatterns)]
		}
	}
	return dashPatterns[0]
}

func (w *Window) bindShortcuts() {
	if w.mode == ModeAnnotate {
		w.bindAnnotate()
		return
	}
	w.bindEdit()
}

func (w *Window) bindEdit() {
	r := w.registry
	r.Register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}}, func() { w.editor.Undo() })
	r.Register("redo", shortcutList{{Rune: 'y', Modifiers: key.ModControl}}, func() { w.editor.Redo() })
	r.Register("select_all", shortcutList{{Rune: 'a', Modifiers: key.ModControl}}, func() { w.editor.SelectAll() })
	r.Register("duplicate", shortcutList{{Rune: 'd', Modifiers: key.ModControl}}, func() { w.editor.DuplicateSelected() })
	r.Register("delete", shortcutList{{Code: key.CodeDeleteForward}, {Code: key.CodeDeleteBackspace}}, func() {
		w.editor.DeleteSelected()
	})
	r.Register("cancel", shortcutList{{Code: key.CodeEscape}}, w.cancelEdit)
	r.Register("save", shortcutList{{Rune: 's', Modifiers: key.ModControl}}, w.saveImage)
	r.Register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, w.copyImage)
	r.Register("paste", shortcutList{{Rune: 'v', Modifiers: key.ModControl}}, w.pasteUnderlay)

	r.Register("tool_select", shortcutList{{Rune: 's'}}, func() { w.editor.SetTool(editor.ToolSelect) })
	r.Register("tool_line", shortcutList{{Rune: 'l'}}, func() { w.editor.SetTool(editor.ToolLine) })
	r.Register("tool_rect", shortcutList{{Rune: 'r'}}, func() { w.editor.SetTool(editor.ToolRect) })
	r.Register("tool_circle", shortcutList{{Rune: 'c'}}, func() { w.editor.SetTool(editor.ToolCircle) })
	r.Register("tool_polygon", shortcutList{{Rune: 'p'}}, func() { w.editor.SetTool(editor.ToolPolygon) })

	for i := 1; i <= 5; i++ {
		width := i
		r.Register(fmt.Sprintf("width_%d", width), shortcutList{{Rune: rune('0' + width)}}, func() {
			w.editor.SetWidth(width)
		})
	}
	r.Register("cycle_color", shortcutList{{Rune: 'x'}}, func() {
		w.editor.SetColor(nextColor(w.editor.Style().Color))
	})
	r.Register("cycle_dash", shortcutList{{Rune: 'v'}}, func() {
		w.editor.SetDash(nextDash(w.editor.Style().Dash))
	})

	r.Register("snap_grid", shortcutList{{Rune: 'g'}}, func() { w.toggleSnap("grid") })
	r.Register("snap_endpoint", shortcutList{{Rune: 'e'}}, func() { w.toggleSnap("endpoint") })
	r.Register("snap_midpoint", shortcutList{{Rune: 'm'}}, func() { w.toggleSnap("midpoint") })
	r.Register("snap_intersection", shortcutList{{Rune: 'i'}}, func() { w.toggleSnap("intersection") })
}

func (w *Window) bindAnnotate() {
	r := w.registry
	r.Register("export", shortcutList{{Rune: 's', Modifiers: key.ModControl}}, w.exportPDF)
	r.Register("select_all", shortcutList{{Rune: 'a', Modifiers: key.ModControl}}, func() {
		w.setStatus(fmt.Sprintf("selected %d", w.manager.SelectAll()))
	})
	r.Register("delete", shortcutList{{Code: key.CodeDeleteForward}, {Code: key.CodeDeleteBackspace}}, func() {
		if n := w.manager.DeleteSelected(); n > 0 {
			w.setStatus(fmt.Sprintf("deleted %d", n))
		}
	})
	r.Register("cancel", shortcutList{{Code: key.CodeEscape}}, func() {
		w.annotator.Cancel()
		w.manager.ClearSelection()
	})

	r.Register("tool_select", shortcutList{{Rune: 's'}}, func() { w.setAnnotateTool(annotate.ToolSelect) })
	r.Register("tool_line", shortcutList{{Rune: 'l'}}, func() { w.setAnnotateTool(annotate.ToolLine) })
	r.Register("tool_rect", shortcutList{{Rune: 'r'}}, func() { w.setAnnotateTool(annotate.ToolRect) })
	r.Register("tool_text", shortcutList{{Rune: 't'}}, func() { w.setAnnotateTool(annotate.ToolText) })

	for i := 1; i <= 5; i++ {
		width := i
		r.Register(fmt.Sprintf("width_%d", width), shortcutList{{Rune: rune('0' + width)}}, func() {
			w.annotator.SetWidth(float64(width))
			w.setStatus(fmt.Sprintf("width: %d", width))
		})
	}
	r.Register("cycle_color", shortcutList{{Rune: 'x'}}, func() {
		c := nextColor(w.annotator.Style().Color)
		w.annotator.SetColor(c)
		w.setStatus("color: " + c)
	})
}

func (w *Window) setAnnotateTool(t annotate.Tool) {
	w.annotator.SetTool(t)
	w.setStatus("tool: " + t.String())
}

// cancelEdit discards an in-progress gesture, or failing that clears the
// selection, so Escape always backs out one level.
func (w *Window) cancelEdit() {
	if w.editor.CancelGesture() {
		return
	}
	if w.editor.Doc().SelectionCount() > 0 {
		w.editor.Doc().ClearSelection()
		w.setStatus("selection cleared")
	}
}

func (w *Window) toggleSnap(kind string) {
	s := w.editor.SnapSettings()
	var on bool
	switch kind {
	case "grid":
		s.Kinds.Grid = !s.Kinds.Grid
		on = s.Kinds.Grid
	case "endpoint":
		s.Kinds.Endpoint = !s.Kinds.Endpoint
		on = s.Kinds.Endpoint
	case "midpoint":
		s.Kinds.Midpoint = !s.Kinds.Midpoint
		on = s.Kinds.Midpoint
	case "intersection":
		s.Kinds.Intersection = !s.Kinds.Intersection
		on = s.Kinds.Intersection
	default:
		return
	}
	w.editor.SetSnapSettings(s)
	state := "off"
	if on {
		state = "on"
	}
	w.setStatus(fmt.Sprintf("snap %s: %s", kind, state))
}

// cleanImage renders the document without selection handles, previews, or
// snap markers, so saved and copied images show only committed content.
func (w *Window) cleanImage() *image.RGBA {
	copts := []render.CanvasOption{render.WithBackground(theme.Hex(w.theme.CanvasBackground))}
	if w.underlay != nil {
		copts = append(copts, render.WithUnderlay(w.underlay))
	}
	clean := render.NewCanvas(w.width, w.height, copts...)
	for _, s := range w.editor.Doc().Shapes() {
		render.DrawShape(clean, s)
	}
	return clean.Image()
}

func (w *Window) saveImage() {
	out, err := os.Create(w.savePath)
	if err != nil {
		w.logger.Error("save", "path", w.savePath, "error", err)
		w.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	img := w.cleanImage()
	if err := png.Encode(out, img); err != nil {
		w.logger.Error("save", "path", w.savePath, "error", err)
		if cerr := out.Close(); cerr != nil {
			w.logger.Error("save: closing file", "path", w.savePath, "error", cerr)
		}
		w.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	if err := out.Close(); err != nil {
		w.logger.Error("save: closing file", "path", w.savePath, "error", err)
		w.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	w.setStatus(fmt.Sprintf("saved %s", w.savePath))
	w.notifier.Save(w.savePath)
}

func (w *Window) copyImage() {
	img := w.cleanImage()
	if err := clipboard.WriteImage(img); err != nil {
		w.logger.Error("copy", "error", err)
		w.setStatus(fmt.Sprintf("copy failed: %v", err))
		return
	}
	w.setStatus("image copied to clipboard")
	w.notifier.Copy("drawing", img)
}

// pasteUnderlay replaces the tracing background with the clipboard image.
// The canvas keeps its size; a larger image is clipped at the edges.
func (w *Window) pasteUnderlay() {
	img, err := clipboard.ReadImage()
	if err != nil {
		w.logger.Warn("paste", "error", err)
		w.setStatus("clipboard has no image")
		return
	}
	w.underlay = img
	w.canvas.SetUnderlay(img)
	w.setStatus("background pasted")
}

func (w *Window) exportPDF() {
	annots := w.manager.All()
	if err := w.exporter.Save(w.pdfPath, annots); err != nil {
		w.logger.Error("export", "path", w.pdfPath, "error", err)
		w.setStatus(fmt.Sprintf("export failed: %v", err))
		return
	}
	w.setStatus(fmt.Sprintf("exported %d annotations to %s", len(annots), w.pdfPath))
	w.notifier.Export(w.pdfPath)
}

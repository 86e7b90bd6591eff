package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/drawings
grid = 25

[snap]
endpoint = true
midpoint = false
intersection = true
grid = true
spacing = 40

[notify]
save = true
export = false
copy = true

[theme.my_custom_theme]
Background = #111111
CanvasBackground = #222222
Selection = #00FF00
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/drawings" {
		t.Errorf("Expected save_dir '/tmp/drawings', got '%s'", cfg.SaveDir)
	}
	if cfg.GridSpacing != 25 {
		t.Errorf("Expected grid 25, got %g", cfg.GridSpacing)
	}

	if !cfg.Snap.Endpoint || cfg.Snap.Midpoint || !cfg.Snap.Intersection || !cfg.Snap.Grid {
		t.Errorf("Unexpected snap toggles: %+v", cfg.Snap)
	}
	if cfg.Snap.Spacing != 40 {
		t.Errorf("Expected spacing 40, got %g", cfg.Snap.Spacing)
	}

	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Export {
		t.Error("Expected notify.export to be false")
	}
	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if th.CanvasBackground.R != 0x22 {
		t.Errorf("Unexpected CanvasBackground color: %+v", th.CanvasBackground)
	}
	if th.Selection.G != 0xFF {
		t.Errorf("Unexpected Selection color: %+v", th.Selection)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cfg.Snap.Endpoint || !cfg.Snap.Midpoint || !cfg.Snap.Intersection {
		t.Errorf("geometry snapping should default on: %+v", cfg.Snap)
	}
	if cfg.Snap.Grid {
		t.Error("grid snapping should default off")
	}
	if cfg.Notify.Save || cfg.Notify.Export || cfg.Notify.Copy {
		t.Errorf("notifications should default off: %+v", cfg.Notify)
	}
}

func TestSnapSettingsSpacingPrecedence(t *testing.T) {
	cfg := New()
	cfg.GridSpacing = 25
	s := cfg.SnapSettings()
	if s.GridSpacing != 25 {
		t.Errorf("root grid should feed spacing, got %g", s.GridSpacing)
	}

	cfg.Snap.Spacing = 40
	s = cfg.SnapSettings()
	if s.GridSpacing != 40 {
		t.Errorf("[snap] spacing should win, got %g", s.GridSpacing)
	}

	if !s.Kinds.Endpoint || !s.Kinds.Midpoint || !s.Kinds.Intersection || s.Kinds.Grid {
		t.Errorf("unexpected kinds: %+v", s.Kinds)
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/drawings
grid = 30

[snap]
endpoint = true
midpoint = true
intersection = false
grid = true
spacing = 15

[notify]
save = true
export = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
CanvasBackground = #101010
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.GridSpacing != cfg2.GridSpacing {
		t.Errorf("GridSpacing mismatch: %g vs %g", cfg.GridSpacing, cfg2.GridSpacing)
	}
	if cfg.Snap != cfg2.Snap {
		t.Errorf("Snap mismatch: %+v vs %+v", cfg.Snap, cfg2.Snap)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch after round trip: %+v vs %+v", t1, t2)
	}
}

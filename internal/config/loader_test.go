package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderPrefersOverridePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	override := filepath.Join(t.TempDir(), "special.rc")
	if err := os.WriteFile(override, []byte("grid = 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader("1.0.0", override)
	if got := l.Path(); got != override {
		t.Fatalf("Path = %q, want %q", got, override)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GridSpacing != 30 {
		t.Fatalf("GridSpacing = %g, want 30", cfg.GridSpacing)
	}
}

func TestLoaderMissingOverrideIsSkipped(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := NewLoader("1.0.0", filepath.Join(t.TempDir(), "gone.rc"))
	if got := l.Path(); got != "" {
		t.Fatalf("Path = %q, want none", got)
	}
}

func TestLoaderDevModeFindsLocalRC(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".vecdrawrc"), []byte("grid = 15\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if got := NewLoader("dev", "").Path(); filepath.Base(got) != ".vecdrawrc" {
		t.Fatalf("dev Path = %q, want a local .vecdrawrc", got)
	}
	if got := NewLoader("1.0.0", "").Path(); got != "" {
		t.Fatalf("release build found %q, want no config", got)
	}
}

func TestLoaderXDGNamePrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "vecdraw")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "vecdraw.rc"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader("1.0.0", "")
	if got, want := l.Path(), filepath.Join(dir, "vecdraw.rc"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.rc"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got, want := l.Path(), filepath.Join(dir, "config.rc"); got != want {
		t.Fatalf("config.rc should win: Path = %q, want %q", got, want)
	}
}

func TestLoaderSavePathDefaultsToXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := NewLoader("1.0.0", "").SavePath()
	if err != nil {
		t.Fatalf("SavePath: %v", err)
	}
	if want := filepath.Join(home, ".config", "vecdraw", "config.rc"); got != want {
		t.Fatalf("SavePath = %q, want %q", got, want)
	}
}

func TestLoaderLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewLoader("1.0.0", "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Snap.Endpoint || !cfg.Snap.Midpoint || !cfg.Snap.Intersection {
		t.Fatalf("defaults missing geometry snapping: %+v", cfg.Snap)
	}
	if cfg.Snap.Grid {
		t.Fatal("grid snapping should default off")
	}
}

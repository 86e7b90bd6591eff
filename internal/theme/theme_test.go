package theme

import (
	"image/color"
	"testing"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"default", "dark", "high_contrast"} {
		th, err := Lookup(name, nil)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, th.Name)
		}
	}
}

func TestLookupEmptyNameFallsBack(t *testing.T) {
	th, err := Lookup("", nil)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if th.Name != "default" {
		t.Errorf("empty name resolved to %q, want default", th.Name)
	}
}

func TestLookupCustomShadowsBuiltin(t *testing.T) {
	custom := Default()
	custom.Name = "dark"
	custom.Background = color.RGBA{1, 2, 3, 255}

	th, err := Lookup("dark", map[string]*Theme{"dark": custom})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if th.Background != custom.Background {
		t.Errorf("custom theme did not shadow the built-in: %+v", th.Background)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope", nil); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestNamesSortedAndMerged(t *testing.T) {
	customs := map[string]*Theme{"zebra": Default(), "dark": Default()}
	names := Names(customs)
	want := []string{"dark", "default", "high_contrast", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", names, want)
		}
	}
}

func TestSetFieldCaseInsensitive(t *testing.T) {
	th := Default()
	if err := SetField(th, "canvasbackground", "#102030"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	want := color.RGBA{0x10, 0x20, 0x30, 255}
	if th.CanvasBackground != want {
		t.Errorf("CanvasBackground = %+v, want %+v", th.CanvasBackground, want)
	}
}

func TestSetFieldUnknownKeyIgnored(t *testing.T) {
	th := Default()
	if err := SetField(th, "NoSuchField", "#ffffff"); err != nil {
		t.Fatalf("unknown key should be ignored, got %v", err)
	}
}

func TestSetFieldBadColor(t *testing.T) {
	th := Default()
	if err := SetField(th, "Selection", "123456"); err == nil {
		t.Fatal("expected error for color without #")
	}
	if err := SetField(th, "Selection", "#12345"); err == nil {
		t.Fatal("expected error for wrong hex length")
	}
}

func TestParseColorAlpha(t *testing.T) {
	c, err := ParseColor("#11223344")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	want := color.RGBA{0x11, 0x22, 0x33, 0x44}
	if c != want {
		t.Errorf("ParseColor = %+v, want %+v", c, want)
	}
}

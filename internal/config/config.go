package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/vecdraw/internal/snap"
	"github.com/example/vecdraw/internal/theme"
)

// Snap holds snap-engine settings.
type Snap struct {
	Endpoint     bool
	Midpoint     bool
	Intersection bool
	Grid         bool
	Spacing      float64
}

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	SaveDir     string
	GridSpacing float64 // root-level shorthand for the snap grid spacing
	Snap        Snap
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults: geometry snapping on, grid
// snapping off, notifications off.
func New() *Config {
	return &Config{
		Snap: Snap{
			Endpoint:     true,
			Midpoint:     true,
			Intersection: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// SnapSettings converts the configured preferences for the snap engine.
// A [snap] spacing wins over the root grid key when both are set; zero
// leaves the engine on its default.
func (c *Config) SnapSettings() snap.Settings {
	spacing := c.Snap.Spacing
	if spacing == 0 {
		spacing = c.GridSpacing
	}
	return snap.Settings{
		Kinds: snap.Kinds{
			Endpoint:     c.Snap.Endpoint,
			Midpoint:     c.Snap.Midpoint,
			Intersection: c.Snap.Intersection,
			Grid:         c.Snap.Grid,
		},
		GridSpacing: spacing,
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.GridSpacing != 0 {
		fmt.Fprintf(&sb, "grid = %g\n", c.GridSpacing)
	}
	sb.WriteString("\n")

	// Snap section
	sb.WriteString("[snap]\n")
	fmt.Fprintf(&sb, "endpoint = %v\n", c.Snap.Endpoint)
	fmt.Fprintf(&sb, "midpoint = %v\n", c.Snap.Midpoint)
	fmt.Fprintf(&sb, "intersection = %v\n", c.Snap.Intersection)
	fmt.Fprintf(&sb, "grid = %v\n", c.Snap.Grid)
	if c.Snap.Spacing != 0 {
		fmt.Fprintf(&sb, "spacing = %g\n", c.Snap.Spacing)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Theme sections, sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", theme.Hex(t.Background))
		fmt.Fprintf(&sb, "Foreground: %s\n", theme.Hex(t.Foreground))
		fmt.Fprintf(&sb, "CanvasBackground: %s\n", theme.Hex(t.CanvasBackground))
		fmt.Fprintf(&sb, "DefaultStroke: %s\n", theme.Hex(t.DefaultStroke))
		fmt.Fprintf(&sb, "Selection: %s\n", theme.Hex(t.Selection))
		fmt.Fprintf(&sb, "HandleFill: %s\n", theme.Hex(t.HandleFill))
		fmt.Fprintf(&sb, "SnapMarker: %s\n", theme.Hex(t.SnapMarker))
		fmt.Fprintf(&sb, "Preview: %s\n", theme.Hex(t.Preview))
		fmt.Fprintf(&sb, "StatusBackground: %s\n", theme.Hex(t.StatusBackground))
		fmt.Fprintf(&sb, "StatusText: %s\n", theme.Hex(t.StatusText))
		sb.WriteString("\n")
	}

	return sb.String()
}

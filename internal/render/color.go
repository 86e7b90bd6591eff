package render

import (
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// namedColors are the stroke colors the editor exposes by name, plus the
// neutrals the decoration drawing uses. Unknown names fall back to black,
// matching how a miswritten config value should degrade.
var namedColors = map[string]color.RGBA{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0x80, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"purple": {0x80, 0x00, 0x80, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
}

// PaletteNames lists the named stroke colors, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveColor turns a palette name or #rrggbb / #rgb hex string into a
// concrete color. The PDF exporter shares this palette so strokes keep
// their color across save formats.
func ResolveColor(s string) color.RGBA {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if c, ok := parseHex(hex); ok {
			return c
		}
		return namedColors["black"]
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	return namedColors["black"]
}

func parseHex(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}

package theme

import (
	"fmt"
	"sort"
)

// builtins are the themes compiled into the binary.
func builtins() map[string]*Theme {
	return map[string]*Theme{
		"default":       Default(),
		"dark":          Dark(),
		"high_contrast": HighContrast(),
	}
}

// Lookup resolves a theme name, checking custom themes (from config
// [theme.<name>] sections) before the built-ins so users can shadow a
// built-in palette. An empty name resolves to the default theme.
func Lookup(name string, customs map[string]*Theme) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := customs[name]; ok {
		return t, nil
	}
	if t, ok := builtins()[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

// Names lists every available theme name, built-ins plus customs, sorted.
func Names(customs map[string]*Theme) []string {
	seen := map[string]bool{}
	var names []string
	for name := range builtins() {
		seen[name] = true
		names = append(names, name)
	}
	for name := range customs {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

package main

import "strings"

// windowTitle assembles the caption for the edit and annotate windows:
// program, then the file being worked on, then the mode. Release builds
// append their version so screenshots of bug reports stay attributable.
func windowTitle(file, mode string) string {
	parts := []string{"vecdraw"}
	if file = strings.TrimSpace(file); file != "" {
		parts = append(parts, file)
	}
	if mode = strings.TrimSpace(mode); mode != "" {
		parts = append(parts, mode)
	}
	if v := strings.TrimSpace(version); v != "" && v != "dev" {
		parts = append(parts, "v"+v)
	}
	return strings.Join(parts, " - ")
}

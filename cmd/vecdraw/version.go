package main

import (
	"fmt"
	"strings"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Printf("%s version %s\n", v.r.program, buildVersion())
	return nil
}

// buildVersion folds the release metadata stamped by -ldflags into one
// string. Source builds report plain "dev".
func buildVersion() string {
	out := version
	if c := strings.TrimSpace(commit); c != "" {
		out += fmt.Sprintf(" (%s)", c)
	}
	if d := strings.TrimSpace(date); d != "" {
		out += " built " + d
	}
	return out
}

package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

// helpTemplates parses templates/ on first use. Parse failures are
// programmer errors, so Must is fine here.
var helpTemplates = sync.OnceValue(func() *template.Template {
	funcs := template.FuncMap{"flags": flagList}
	return template.Must(template.New("").Funcs(funcs).ParseFS(helpFS, "templates/*.txt"))
})

// flagList backs the "flags" template function. Commands without flags
// pass a nil set and render an empty options section.
func flagList(fs *flag.FlagSet) []flagInfo {
	var list []flagInfo
	if fs == nil {
		return list
	}
	fs.VisitAll(func(f *flag.Flag) {
		list = append(list, flagInfo{Name: f.Name, DefValue: f.DefValue, Usage: f.Usage})
	})
	return list
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

// HelpData is what a command exposes to its help template.
type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

// UsageError renders a command's help page as its error text, so a bad
// invocation prints the same output as -h.
type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	var buf bytes.Buffer
	if err := helpTemplates().ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return err.Error()
	}
	return buf.String()
}

// usageFunc adapts a command's rendered help to flag.FlagSet.Usage.
func usageFunc(h HelpData) func() {
	return func() {
		fmt.Fprintln(os.Stderr, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string {
	return "root.txt"
}

func (e *editCmd) Template() string {
	return "edit.txt"
}

func (a *annotateCmd) Template() string {
	return "annotate.txt"
}

func (d *drawCmd) Template() string {
	return "draw.txt"
}

func (t *themesCmd) Template() string {
	return "themes.txt"
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

func (i *interactiveCmd) Template() string {
	return "interactive.txt"
}

func (v *versionCmd) Template() string {
	return "version.txt"
}

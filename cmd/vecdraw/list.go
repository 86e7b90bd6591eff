package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/vecdraw/internal/render"
	"github.com/example/vecdraw/internal/theme"
)

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	var customs map[string]*theme.Theme
	active := ""
	if c.root != nil && c.config != nil {
		customs = c.config.Themes
	}
	if c.root != nil && c.activeTheme != nil {
		active = c.activeTheme.Name
	}
	names := theme.Names(customs)
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no themes available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available themes (* marks the active theme):")
	for _, name := range names {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, name)
	}
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	names := render.PaletteNames()
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no colors available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available stroke colors:")
	for _, name := range names {
		col := render.ResolveColor(name)
		hex := theme.Hex(col)
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(os.Stdout, "  %-12s %s %s\n", name, hex, block)
	}
	fmt.Fprintln(os.Stdout, "hex values like #rrggbb work anywhere a color name does")
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

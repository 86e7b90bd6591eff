package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/vecdraw/internal/config"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	if c.fs.NArg() < 1 {
		return &UsageError{of: c}
	}
	switch verb := c.fs.Arg(0); verb {
	case "print":
		fmt.Print(c.root.config.String())
		return nil
	case "path":
		return c.runPath()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", verb)
	}
}

// runPath reports which file the active settings came from.
func (c *configCmd) runPath() error {
	path := config.NewLoader(version, configPathOverride).Path()
	if path == "" {
		fmt.Println("no config file found, using defaults")
		return nil
	}
	fmt.Println(path)
	return nil
}

// runSave writes the active settings back out, so edits made through
// environment variables or flags can be made permanent.
func (c *configCmd) runSave() error {
	path, err := config.NewLoader(version, configPathOverride).SavePath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.root.config.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}

package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/vecdraw/internal/theme"
)

// Parse reads configuration from an io.Reader. The format is RC-style:
// `key = value` pairs in an unnamed root section, then [snap], [notify]
// and [theme.<name>] sections. `key: value` is accepted too, and # or //
// start comments.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	var (
		section string
		current *theme.Theme // non-nil while inside [theme.<name>]
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", strings.HasPrefix(line, "#"), strings.HasPrefix(line, "//"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			section = line[1 : len(line)-1]
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				// Keys the file leaves out keep their defaults.
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			key, value, ok = strings.Cut(line, ":")
		}
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case current != nil:
			err = theme.SetField(current, key, value)
		case section == "snap":
			err = setSnapField(&cfg.Snap, key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			return nil, fmt.Errorf("error in section [%s]: %w", section, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "grid":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid grid spacing: %w", err)
		}
		cfg.GridSpacing = f
	}
	return nil
}

func setSnapField(s *Snap, key, value string) error {
	key = strings.ToLower(key)
	if key == "spacing" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid spacing: %w", err)
		}
		s.Spacing = f
		return nil
	}

	toggles := map[string]*bool{
		"endpoint":     &s.Endpoint,
		"midpoint":     &s.Midpoint,
		"intersection": &s.Intersection,
		"grid":         &s.Grid,
	}
	dst, ok := toggles[key]
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	dst, ok := map[string]*bool{
		"save":   &n.Save,
		"export": &n.Export,
		"copy":   &n.Copy,
	}[strings.ToLower(key)]
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	*dst = b
	return nil
}

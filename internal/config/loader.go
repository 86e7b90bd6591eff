package config

import (
	"os"
	"path/filepath"
)

// Loader resolves and reads the configuration file.
type Loader struct {
	version  string
	override string
}

// NewLoader returns a Loader. version switches the dev-mode search path on
// and override pins the file location outright (flag or -ldflags).
func NewLoader(version, override string) *Loader {
	return &Loader{version: version, override: override}
}

// Load parses the first configuration file found. A missing file is not an
// error; the defaults come back instead.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Path returns the configuration file in use, or "" when none of the
// candidate locations has one.
func (l *Loader) Path() string {
	for _, candidate := range l.candidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// SavePath returns where "config save" should write: the file already in
// use when there is one, otherwise the primary XDG location.
func (l *Loader) SavePath() (string, error) {
	if path := l.Path(); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vecdraw", "config.rc"), nil
}

// candidates lists the search order: the override, a .vecdrawrc in the
// working directory of a dev build, then the XDG names.
func (l *Loader) candidates() []string {
	paths := make([]string, 0, 4)
	if l.override != "" {
		paths = append(paths, l.override)
	}
	if l.version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".vecdrawrc"))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".config", "vecdraw")
		paths = append(paths, filepath.Join(dir, "config.rc"), filepath.Join(dir, "vecdraw.rc"))
	}
	return paths
}

// Package config loads the optional project settings file (joy.toml) that
// sits next to a source file: a single flat settings file rather than a
// project manifest with a module tree.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const FileName = "joy.toml"

// Config is the decoded contents of joy.toml. Every field is optional; an
// absent file (or an absent table within a present file) leaves the zero
// value, which callers must treat as "unset" and fall back to defaults or
// CLI flags; CLI flags always win over file settings.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Build       BuildConfig       `toml:"build"`
}

type DiagnosticsConfig struct {
	Color            string `toml:"color"` // "auto" | "on" | "off"
	MaxDiagnostics   int    `toml:"max_diagnostics"`
	WarningsAsErrors bool   `toml:"warnings_as_errors"`
}

type BuildConfig struct {
	Output string `toml:"output"`
}

// Find locates joy.toml next to sourcePath, returning ("", false, nil) if
// none exists. There is no upward directory search: joy.toml is a
// per-file sibling setting, not a project-root marker, since Joy's
// semantic core has no module system.
func Find(sourcePath string) (string, bool, error) {
	dir := filepath.Dir(sourcePath)
	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
	}
	return "", false, nil
}

// Load decodes path into a Config.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// LoadForSource finds and loads joy.toml next to sourcePath, if present. It
// is not an error for the file to be absent; the returned Config is then
// simply the zero value.
func LoadForSource(sourcePath string) (Config, error) {
	path, ok, err := Find(sourcePath)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, nil
	}
	return Load(path)
}

// Package config loads fluentscan.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"fluentscan/internal/scanner"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "fluentscan.toml"

// Config is the decoded configuration.
type Config struct {
	Path   string       `toml:"-"`
	Scan   ScanConfig   `toml:"scan"`
	Output OutputConfig `toml:"output"`
}

// ScanConfig controls how inputs are scanned.
type ScanConfig struct {
	Locale string `toml:"locale"`
	Window int    `toml:"window"`
	Jobs   int    `toml:"jobs"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Locale: "und",
			Window: scanner.DefaultWindow,
		},
		Output: OutputConfig{
			Format: "pretty",
			Color:  "auto",
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicitPath when set, otherwise the nearest FileName above
// startDir, otherwise the defaults.
func Resolve(explicitPath, startDir string) (Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Scan.Window < 0 {
		return fmt.Errorf("scan.window must not be negative, got %d", c.Scan.Window)
	}
	if c.Scan.Jobs < 0 {
		return fmt.Errorf("scan.jobs must not be negative, got %d", c.Scan.Jobs)
	}
	if _, err := PolicyForLocale(c.Scan.Locale); err != nil {
		return err
	}
	switch c.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown output.format %q (expected: pretty|json|msgpack)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unknown output.color %q (expected: auto|on|off)", c.Output.Color)
	}
	return nil
}

// Policy returns the separator policy for the configured locale.
func (c Config) Policy() scanner.SeparatorPolicy {
	p, err := PolicyForLocale(c.Scan.Locale)
	if err != nil {
		return scanner.PolicyInvariant
	}
	return p
}

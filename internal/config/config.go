// Package config loads bigint.toml, the optional settings file for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"bigint/internal/bigint"
	"bigint/internal/trace"
)

// FileName is the settings file looked up from the working directory upward.
const FileName = "bigint.toml"

// Config is the decoded bigint.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
	Trace  TraceConfig  `toml:"trace"`

	// Path is where the config came from; empty for defaults.
	Path string `toml:"-"`
}

type OutputConfig struct {
	Base  int    `toml:"base"`
	Color string `toml:"color"`
}

type BatchConfig struct {
	Jobs      int    `toml:"jobs"`
	DiskCache bool   `toml:"disk_cache"`
	UI        string `toml:"ui"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Default returns the settings used when no bigint.toml exists.
func Default() Config {
	return Config{
		Output: OutputConfig{Base: 10, Color: "auto"},
		Batch:  BatchConfig{UI: "auto"},
		Trace:  TraceConfig{Level: "off", Output: "-"},
	}
}

// Find walks up from startDir looking for bigint.toml.
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

// Load discovers bigint.toml from startDir. Defaults are returned when none
// is found.
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes the given file over the defaults and validates it.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Output.Base < bigint.MinBase || c.Output.Base > bigint.MaxBase {
		return fmt.Errorf("[output].base: %w: %d", bigint.ErrInvalidBase, c.Output.Base)
	}
	if err := checkMode("[output].color", c.Output.Color); err != nil {
		return err
	}
	if err := checkMode("[batch].ui", c.Batch.UI); err != nil {
		return err
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs must be >= 0, got %d", c.Batch.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	return nil
}

func checkMode(key, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("%s: invalid value %q (expected auto|on|off)", key, value)
	}
}

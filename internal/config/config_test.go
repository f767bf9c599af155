package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bigint/internal/bigint"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "" || cfg.Output.Base != 10 || cfg.Trace.Level != "off" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "[output]\nbase = 16\n\n[batch]\njobs = 3\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Base != 16 || cfg.Batch.Jobs != 3 {
		t.Fatalf("expected base 16 and jobs 3, got %+v", cfg)
	}
	if cfg.Output.Color != "auto" {
		t.Fatalf("expected unspecified keys to keep defaults, got %q", cfg.Output.Color)
	}
	if !strings.HasSuffix(cfg.Path, FileName) {
		t.Fatalf("expected path to config file, got %q", cfg.Path)
	}
}

func TestLoadFileRejectsBadBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output]\nbase = 40\n")
	if _, err := LoadFile(path); !errors.Is(err, bigint.ErrInvalidBase) {
		t.Fatalf("expected ErrInvalidBase, got %v", err)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output]\nradix = 2\n")
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "output.radix") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output\n")
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Batch.UI = "maybe"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid ui mode error")
	}
	cfg = Default()
	cfg.Trace.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid trace level error")
	}
	cfg = Default()
	cfg.Batch.Jobs = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid jobs error")
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", "examples", FileName))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := Default()
	if cfg.Output != want.Output || cfg.Batch != want.Batch || cfg.Trace != want.Trace {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

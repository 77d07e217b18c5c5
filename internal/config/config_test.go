package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindReturnsFalseWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "main.joy")
	path, ok, err := Find(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected no joy.toml, got %q", path)
	}
}

func TestFindOnlyChecksTheSourceFilesOwnDirectory(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[build]\noutput = \"a.c\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write parent joy.toml: %v", err)
	}

	source := filepath.Join(sub, "main.joy")
	_, ok, err := Find(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Find should not walk up to a parent directory's joy.toml")
	}
}

func TestLoadForSourceDecodesSiblingFile(t *testing.T) {
	dir := t.TempDir()
	toml := `
[diagnostics]
color = "on"
max_diagnostics = 5
warnings_as_errors = true

[build]
output = "out.c"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(toml), 0o644); err != nil {
		t.Fatalf("failed to write joy.toml: %v", err)
	}

	cfg, err := LoadForSource(filepath.Join(dir, "main.joy"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Diagnostics.Color != "on" {
		t.Errorf("Color = %q, want %q", cfg.Diagnostics.Color, "on")
	}
	if cfg.Diagnostics.MaxDiagnostics != 5 {
		t.Errorf("MaxDiagnostics = %d, want 5", cfg.Diagnostics.MaxDiagnostics)
	}
	if !cfg.Diagnostics.WarningsAsErrors {
		t.Error("WarningsAsErrors = false, want true")
	}
	if cfg.Build.Output != "out.c" {
		t.Errorf("Output = %q, want %q", cfg.Build.Output, "out.c")
	}
}

func TestLoadForSourceWithNoFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadForSource(filepath.Join(dir, "main.joy"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero Config, got %+v", cfg)
	}
}

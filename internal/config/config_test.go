package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ContextLines != 3 {
		t.Errorf("ContextLines = %d, want 3", cfg.ContextLines)
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
	if cfg.WordDiff {
		t.Error("WordDiff should default to false")
	}
	if cfg.RemotePlaceholder != "No remote configured" {
		t.Errorf("RemotePlaceholder = %q", cfg.RemotePlaceholder)
	}
}

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "gitpeek")
}

func TestLoad_NoFile(t *testing.T) {
	useTempConfigDir(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load with no file = %+v, want defaults", cfg)
	}
}

func TestLoad_FileMerge(t *testing.T) {
	cfgDir := useTempConfigDir(t)
	os.MkdirAll(cfgDir, 0o755)
	os.WriteFile(filepath.Join(cfgDir, "config.json"),
		[]byte(`{"contextLines": 7, "noColor": true}`), 0o644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ContextLines != 7 {
		t.Errorf("ContextLines = %d, want 7", cfg.ContextLines)
	}
	if !cfg.NoColor {
		t.Error("NoColor should come from file")
	}
	if cfg.RemotePlaceholder != "No remote configured" {
		t.Errorf("RemotePlaceholder default lost: %q", cfg.RemotePlaceholder)
	}
}

func TestLoad_FileInvalidJSON(t *testing.T) {
	cfgDir := useTempConfigDir(t)
	os.MkdirAll(cfgDir, 0o755)
	os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("{not json"), 0o644)

	if _, err := Load(); err == nil {
		t.Error("Load should fail on malformed config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgDir := useTempConfigDir(t)
	os.MkdirAll(cfgDir, 0o755)
	os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(`{"contextLines": 7}`), 0o644)
	t.Setenv("GITPEEK_CONTEXT_LINES", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ContextLines != 9 {
		t.Errorf("ContextLines = %d, want env value 9", cfg.ContextLines)
	}
}

func TestLoad_EnvMalformedContextIgnored(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("GITPEEK_CONTEXT_LINES", "abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ContextLines != 3 {
		t.Errorf("ContextLines = %d, want default 3 for malformed env", cfg.ContextLines)
	}
}

func TestLoad_EnvBools(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("GITPEEK_NO_COLOR", "1")
	t.Setenv("GITPEEK_WORD_DIFF", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.NoColor || !cfg.WordDiff {
		t.Errorf("env bools not applied: %+v", cfg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	useTempConfigDir(t)

	want := Config{ContextLines: 5, WordDiff: true, RemotePlaceholder: "none"}
	if err := Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

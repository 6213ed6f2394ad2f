package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the gitpeek configuration.
type Config struct {
	ContextLines      int    `json:"contextLines"`
	NoColor           bool   `json:"noColor"`
	WordDiff          bool   `json:"wordDiff"`
	RemotePlaceholder string `json:"remotePlaceholder,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ContextLines:      3,
		NoColor:           false,
		WordDiff:          false,
		RemotePlaceholder: "No remote configured",
	}
}

// ConfigDir returns the platform-appropriate config directory for gitpeek.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitpeek"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gitpeek"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitpeek"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gitpeek"), nil
	default:
		return filepath.Join(home, ".config", "gitpeek"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env.
// Flag overrides are applied by the CLI on top of the result, since flags
// already carry their own unset sentinels.
func Load() (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.ContextLines > 0 {
		dst.ContextLines = src.ContextLines
	}
	if src.RemotePlaceholder != "" {
		dst.RemotePlaceholder = src.RemotePlaceholder
	}
	// JSON zero value for bool is indistinguishable from unset; the file can
	// only switch these on, flags switch them per invocation.
	dst.NoColor = src.NoColor || dst.NoColor
	dst.WordDiff = src.WordDiff || dst.WordDiff
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GITPEEK_CONTEXT_LINES"); v != "" {
		// Malformed numeric input falls back silently, matching the CLI flag.
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ContextLines = n
		}
	}
	if v := os.Getenv("GITPEEK_NO_COLOR"); v == "1" || v == "true" {
		cfg.NoColor = true
	}
	if v := os.Getenv("GITPEEK_WORD_DIFF"); v == "1" || v == "true" {
		cfg.WordDiff = true
	}
	if v := os.Getenv("GITPEEK_REMOTE_PLACEHOLDER"); v != "" {
		cfg.RemotePlaceholder = v
	}
}

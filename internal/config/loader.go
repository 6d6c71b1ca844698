package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "mazey.yaml"

// Load loads the mazey configuration.
// Search order: customPath -> ~/.mazey/config.yaml -> ./configs/mazey.yaml -> embedded default.
// Files are decoded over Default(), so missing keys keep their defaults.
// Environment overrides are applied last.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		ApplyEnv(&cfg)
		return cfg, nil
	}

	if !loadFirst(&cfg, userConfigPath(), filepath.Join("configs", FileName)) {
		// Use embedded default YAML
		if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
			cfg = Default() // Fallback to hardcoded if embed fails
		}
	}

	ApplyEnv(&cfg)
	return cfg, nil
}

// loadFirst decodes the first readable and valid file among paths into cfg.
// Broken files are skipped like missing ones.
func loadFirst(cfg *Config, paths ...string) bool {
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		candidate := *cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		*cfg = candidate
		return true
	}
	return false
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazey", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

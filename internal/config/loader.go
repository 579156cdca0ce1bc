package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSandbox loads sandbox configuration.
// Search order: customPath -> ~/.sandpit/configs/sandbox.yaml -> ./configs/sandbox.yaml -> embedded default
func LoadSandbox(customPath string) (SandboxConfig, error) {
	return load("sandbox.yaml", customPath, defaultSandboxYAML, DefaultSandboxConfig)
}

// LoadTileWorld loads tile world configuration.
// Search order: customPath -> ~/.sandpit/configs/tileworld.yaml -> ./configs/tileworld.yaml -> embedded default
func LoadTileWorld(customPath string) (TileWorldConfig, error) {
	return load("tileworld.yaml", customPath, defaultTileWorldYAML, DefaultTileWorldConfig)
}

// load decodes the first readable config in the search order on top of the
// hard-coded defaults, so a partial file only overrides the keys it names.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sandpit", "configs", filename)
}

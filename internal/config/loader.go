package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported by Load when no config file was found on disk.
const EmbeddedSource = "embedded"

// LocalPath is the project-relative config file checked after the user file.
var LocalPath = filepath.Join("configs", "brickbreaker.yaml")

// Load reads the configuration and reports where it came from.
// Search order: customPath -> ~/.brickbreaker/config.yaml -> ./configs/brickbreaker.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// An explicit customPath must exist; the other locations are optional.
func Load(customPath string) (Config, string, error) {
	base := baseConfig()

	if customPath != "" {
		cfg, err := loadFile(customPath, base)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path, base)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}

	return base, EmbeddedSource, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := baseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// baseConfig returns the embedded defaults, falling back to the hardcoded ones.
func baseConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "config.yaml")
}

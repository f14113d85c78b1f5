package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Source names where Load found its settings.
const (
	SourceEmbedded = "embedded"
)

// Load reads settings layered over Defaults.
// Search order: customPath -> ~/.popcorn/config.yaml -> ./configs/config.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error; broken files found on
// the search path are logged and skipped.
func Load(customPath string) (Settings, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Defaults(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		s, err := Parse(data)
		if err != nil {
			return Defaults(), "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return s, customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "config.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		s, err := Parse(data)
		if err != nil {
			log.Warn("skipping config file", "path", path, "err", err)
			continue
		}
		return s, path, nil
	}

	s, err := Parse(defaultYAML)
	if err != nil {
		log.Error("embedded config is broken, using built-in defaults", "err", err)
		return Defaults(), SourceEmbedded, nil
	}
	return s, SourceEmbedded, nil
}

// Parse decodes YAML over Defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), err
	}
	if err := s.Validate(); err != nil {
		return Defaults(), err
	}
	return s, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".popcorn", filename)
}

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a configuration file.
type Format int

const (
	// FormatJSON is the default pake.json encoding.
	FormatJSON Format = iota
	// FormatYAML is accepted for hand-written configurations.
	FormatYAML
)

// FormatOf guesses the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*PakeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(raw, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes raw configuration bytes.
// Unknown keys are ignored in both formats.
func Parse(raw []byte, format Format) (*PakeConfig, error) {
	var cfg PakeConfig

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
	default:
		if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&cfg); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a YAML or JSON file into v. Fields absent from the file
// keep the values v already holds, so callers can pre-fill defaults.
func LoadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	return ParseFile(data, path, v)
}

// ParseFile parses data as YAML or JSON. JSON goes through the YAML decoder
// too, so durations may be written as strings ("5ms") in either format and
// field names follow the yaml tags.
func ParseFile(data []byte, filename string, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".json":
			return fmt.Errorf("failed to parse JSON: %w", err)
		case ".yaml", ".yml":
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		return fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
	}
	return nil
}

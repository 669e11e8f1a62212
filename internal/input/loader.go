// Package input loads trait-output and schema documents from disk for the
// CLI. JSON files pass through untouched; YAML files are normalized into the
// JSON byte contract the parameter parser expects.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads the document at path. Files ending in .yaml or .yml are
// converted to their JSON equivalent; everything else is treated as JSON and
// returned verbatim so the parameter parser owns its validation.
func LoadDocument(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("input: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlToJSON(path, data)
	default:
		return data, nil
	}
}

func yamlToJSON(path string, data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("input: parse YAML %s: %w", path, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("input: convert %s to JSON: %w", path, err)
	}
	return out, nil
}

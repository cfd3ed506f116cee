package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML catalog file from the given path.
func LoadFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a CatalogFile.
func Parse(data []byte) (*CatalogFile, error) {
	var cf CatalogFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cf)

	return &cf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *CatalogFile) {
	if cf.Version == "" {
		cf.Version = "1"
	}

	for i := range cf.Enums {
		e := &cf.Enums[i]
		if e.Search == "" {
			e.Search = "linear"
		}

		if e.Match == "" {
			e.Match = "exact"
		}

		if e.Unknown == "" {
			e.Unknown = "sentinel"
		}
	}
}

// Marshal serializes a CatalogFile to YAML.
func Marshal(cf *CatalogFile) ([]byte, error) {
	return yaml.Marshal(cf)
}

// WriteFile writes a CatalogFile to the given path.
func WriteFile(cf *CatalogFile, path string) error {
	data, err := Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}

package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the structure of a scenarios YAML file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Catalog struct {
	Version   string   `yaml:"version"`
	Scenarios []Config `yaml:"scenarios"`
}

// LoadFile reads a scenarios YAML file with strict field checking
// (typos must cause errors) and validates every entry.
func LoadFile(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenarios catalog from YAML bytes.
func Parse(data []byte) ([]Config, error) {
	var cat Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	for _, c := range cat.Scenarios {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("parsing scenarios: %w", err)
		}
	}
	return cat.Scenarios, nil
}

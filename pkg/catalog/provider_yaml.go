package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for a YAML catalog file.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a provider reading from the given file. The file
// is read lazily on each Landmarks call.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// Landmarks loads the catalog from the YAML file.
func (y *YAMLProvider) Landmarks() ([]Landmark, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read landmark catalog: %w", err)
	}

	var doc struct {
		Landmarks []Landmark `yaml:"landmarks"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse landmark catalog: %w", err)
	}
	return doc.Landmarks, nil
}

// Close is a no-op for the file-backed provider.
func (y *YAMLProvider) Close() error { return nil }

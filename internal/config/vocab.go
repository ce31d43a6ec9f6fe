package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the user-extensible parsing vocabulary: extra column
// synonyms, category keywords, and supplier names merged over the engine's
// built-in tables. It loads from an optional YAML file so deployments can
// teach the importer their suppliers' export formats without a rebuild.
//
// File shape:
//
//	synonyms:
//	  "internal sku": partNumber
//	  "warehouse bin": status
//	categories:
//	  gasket: Seals
//	suppliers:
//	  - Bolt Depot
type Vocabulary struct {
	// Synonyms maps raw header labels to canonical field names.
	Synonyms map[string]string `yaml:"synonyms"`

	// Categories maps description keywords to category labels.
	Categories map[string]string `yaml:"categories"`

	// Suppliers lists additional known supplier names.
	Suppliers []string `yaml:"suppliers"`
}

// LoadVocabulary reads a vocabulary YAML file. An empty path yields an empty
// vocabulary, not an error — the file is optional.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return &Vocabulary{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}
	return &v, nil
}

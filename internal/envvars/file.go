package envvars

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadCatalogFile reads a YAML catalog. Variables without a category are classified
// by name and variables without a kind default to KindVariable.
func LoadCatalogFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return ParseCatalog(b)
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var raw Catalog

	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	catalog := &Catalog{Name: raw.Name, Files: raw.Files}

	for _, v := range raw.Variables {
		if v.Kind == "" {
			v.Kind = KindVariable
		}

		if v.Category == "" {
			v.Category = Classify(v.Name)
		}

		// duplicates are kept so Verify can report them
		catalog.Variables = append(catalog.Variables, v)
	}

	return catalog, nil
}

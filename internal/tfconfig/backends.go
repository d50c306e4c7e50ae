package tfconfig

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// ParseBackend decodes a YAML backend block such as
//
//	s3:
//	  bucket: foo
//
// into the map form used in the terraform block. An empty input yields a nil backend.
func ParseBackend(backendInput string) (map[string]interface{}, error) {
	var raw map[string]interface{}

	if err := yaml.Unmarshal([]byte(backendInput), &raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	if len(raw) > 1 {
		return nil, fmt.Errorf("expected a single backend, found %d", len(raw))
	}

	for name, config := range raw {
		if config == nil {
			raw[name] = map[string]interface{}{}
			continue
		}

		if _, ok := config.(map[string]interface{}); !ok {
			return nil, fmt.Errorf("backend %q must be a map of settings, found %T", name, config)
		}
	}

	return raw, nil
}

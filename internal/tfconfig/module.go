package tfconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Module is the JSON representation of a root Terraform module (main.tf.json)
type Module struct {
	Terraform Terraform                         `json:"terraform"`
	Resources map[string]map[string]interface{} `json:"resource,omitempty"`
	Data      map[string]map[string]interface{} `json:"data,omitempty"`
	Providers map[string]ProviderConfig         `json:"provider,omitempty"`
}

func NewModule() *Module {
	return &Module{
		Terraform: Terraform{},
		Resources: map[string]map[string]interface{}{},
		Data:      map[string]map[string]interface{}{},
	}
}

// AppendResource adds a resource block of the given type, replacing any block with the same name
func (m *Module) AppendResource(resourceType string, name string, resource interface{}) {
	if m.Resources == nil {
		m.Resources = map[string]map[string]interface{}{}
	}

	if _, ok := m.Resources[resourceType]; !ok {
		m.Resources[resourceType] = map[string]interface{}{}
	}

	m.Resources[resourceType][name] = resource
}

// AppendData adds a data source block of the given type, replacing any block with the same name
func (m *Module) AppendData(dataType string, name string, data interface{}) {
	if m.Data == nil {
		m.Data = map[string]map[string]interface{}{}
	}

	if _, ok := m.Data[dataType]; !ok {
		m.Data[dataType] = map[string]interface{}{}
	}

	m.Data[dataType][name] = data
}

// WriteFile marshals the module and writes it to path
func (m *Module) WriteFile(path string) error {
	b, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal module: %w", err)
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write module file: %w", err)
	}

	return nil
}

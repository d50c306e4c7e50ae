package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
	"github.com/takescoop/cicd-variables-action/internal/tfeprovider"
)

func TestNewVariablesItem(t *testing.T) {
	host := envvars.ConfigVariable{
		Name:     "DB_HOST",
		Kind:     envvars.KindVariable,
		Example:  "postgres_container",
		Category: envvars.CategoryDatabase,
	}

	password := envvars.ConfigVariable{
		Name:      "DB_PASSWORD",
		Kind:      envvars.KindVariable,
		Protected: true,
		Masked:    true,
		Category:  envvars.CategorySecret,
	}

	tests := []struct {
		name     string
		variable envvars.ConfigVariable
		env      map[string]string
		expected *VariablesItem
		ok       bool
	}{
		{
			name:     "fall back to the example",
			variable: host,
			env:      map[string]string{},
			expected: &VariablesItem{Key: "DB_HOST", Value: "postgres_container"},
			ok:       true,
		},
		{
			name:     "prefer the runner environment",
			variable: host,
			env:      map[string]string{"DB_HOST": "db.internal"},
			expected: &VariablesItem{Key: "DB_HOST", Value: "db.internal"},
			ok:       true,
		},
		{
			name:     "read secrets from the runner environment",
			variable: password,
			env:      map[string]string{"DB_PASSWORD": "hunter2"},
			expected: &VariablesItem{Key: "DB_PASSWORD", Value: "hunter2", Sensitive: true},
			ok:       true,
		},
		{
			name:     "skip secrets without a value",
			variable: password,
			env:      map[string]string{},
			ok:       false,
		},
		{
			name:     "skip secrets with an empty value",
			variable: password,
			env:      map[string]string{"DB_PASSWORD": ""},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := NewVariablesItem(tt.variable, lookupMap(tt.env))

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, item)
		})
	}
}

func TestNewVariables(t *testing.T) {
	t.Run("resolve the order-service catalog", func(t *testing.T) {
		variables, err := NewVariables(envvars.OrderService(), lookupMap(map[string]string{
			"DB_PASSWORD":       "hunter2",
			"POSTGRES_PASSWORD": "hunter2",
		}))
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, len(variables), 13)

		sensitive := []string{}
		for _, v := range variables {
			if v.Sensitive {
				sensitive = append(sensitive, v.Key)
			}
		}

		assert.Equal(t, []string{"DB_PASSWORD", "POSTGRES_PASSWORD"}, sensitive)
	})

	t.Run("skip optional secrets without a value", func(t *testing.T) {
		variables, err := NewVariables(envvars.OrderService(), lookupMap(map[string]string{}))
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, len(variables), 11)
	})

	t.Run("fail on a required secret without a value", func(t *testing.T) {
		catalog := &envvars.Catalog{Name: "app"}
		catalog.Set(envvars.ConfigVariable{
			Name:      "SECRET_KEY",
			Kind:      envvars.KindVariable,
			Protected: true,
			Masked:    true,
			Category:  envvars.CategorySecret,
			Required:  true,
		})

		_, err := NewVariables(catalog, lookupMap(map[string]string{}))
		assert.EqualError(t, err, `required secret "SECRET_KEY" has no value in the runner environment`)
	})
}

func TestMaskSecrets(t *testing.T) {
	catalog := envvars.OrderService()

	assert.Equal(t, MaskSecrets(catalog, lookupMap(map[string]string{})), 0)
	assert.Equal(t, MaskSecrets(catalog, lookupMap(map[string]string{"DB_PASSWORD": "hunter2", "DB_HOST": "db"})), 1)
}

func TestVariablesItemToResource(t *testing.T) {
	item := VariablesItem{Key: "DB_PASSWORD", Value: "hunter2", Sensitive: true}

	assert.Equal(t, item.Address(), "tfe_variable.DB_PASSWORD")
	assert.Equal(t, item.ToResource("ws-abc123"), &tfeprovider.Variable{
		Key:         "DB_PASSWORD",
		Value:       "hunter2",
		Category:    tfeprovider.CategoryEnv,
		Sensitive:   true,
		WorkspaceID: "ws-abc123",
	})
}

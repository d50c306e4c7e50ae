package action

import (
	"fmt"

	"github.com/sethvargo/go-githubactions"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
	"github.com/takescoop/cicd-variables-action/internal/tfeprovider"
)

// LookupFunc resolves the value of an environment variable, like os.LookupEnv
type LookupFunc func(string) (string, bool)

type Variables []VariablesItem

// VariablesItem is a catalog variable resolved to the value that will be published
type VariablesItem struct {
	Key         string
	Value       string
	Description string
	Sensitive   bool
}

// NewVariablesItem resolves the value of v. Secrets only ever come from lookup,
// other variables fall back to their example.
func NewVariablesItem(v envvars.ConfigVariable, lookup LookupFunc) (*VariablesItem, bool) {
	item := &VariablesItem{
		Key:         v.Name,
		Description: v.Description,
		Sensitive:   v.Masked,
	}

	value, ok := lookup(v.Name)

	if v.Masked {
		if !ok || value == "" {
			return nil, false
		}

		item.Value = value

		return item, true
	}

	if ok {
		item.Value = value
	} else {
		item.Value = v.Example
	}

	return item, true
}

// NewVariables resolves every variable of the catalog. A secret without a value is an
// error when the variable is required and is skipped otherwise.
func NewVariables(catalog *envvars.Catalog, lookup LookupFunc) (Variables, error) {
	variables := Variables{}

	for _, v := range catalog.Variables {
		item, ok := NewVariablesItem(v, lookup)
		if !ok {
			if v.Required {
				return nil, fmt.Errorf("required secret %q has no value in the runner environment", v.Name)
			}

			githubactions.Warningf("Secret %q has no value in the runner environment, skipping\n", v.Name)
			continue
		}

		variables = append(variables, *item)
	}

	return variables, nil
}

// MaskSecrets registers the value of every masked variable with the runner so it is
// hidden from the job log. It returns the number of values masked.
func MaskSecrets(catalog *envvars.Catalog, lookup LookupFunc) int {
	masked := 0

	for _, v := range catalog.Variables {
		if !v.Masked {
			continue
		}

		if value, ok := lookup(v.Name); ok && value != "" {
			githubactions.AddMask(value)
			masked++
		}
	}

	return masked
}

// Address returns the Terraform address of the variable's tfe_variable resource
func (avi VariablesItem) Address() string {
	return fmt.Sprintf("tfe_variable.%s", avi.Key)
}

func (avi VariablesItem) ToResource(workspaceID string) *tfeprovider.Variable {
	return &tfeprovider.Variable{
		Key:         avi.Key,
		Value:       avi.Value,
		Description: avi.Description,
		Category:    tfeprovider.CategoryEnv,
		Sensitive:   avi.Sensitive,
		WorkspaceID: workspaceID,
	}
}

func (av Variables) ToResource(workspaceID string) []*tfeprovider.Variable {
	vars := make([]*tfeprovider.Variable, len(av))

	for i, avi := range av {
		vars[i] = avi.ToResource(workspaceID)
	}

	return vars
}

package action

import (
	"context"
	"errors"
	"fmt"

	tfe "github.com/hashicorp/go-tfe"
	tfjson "github.com/hashicorp/terraform-json"
	"github.com/takescoop/cicd-variables-action/internal/tfconfig"
	"github.com/takescoop/cicd-variables-action/internal/tfeprovider"
)

// workspaceRef is the interpolation of the target workspace ID inside the module
const workspaceRef = "${data.tfe_workspace.target.id}"

type Workspace struct {
	Name string
	ID   string
}

// ReadWorkspace looks up the target workspace, it must already exist
func ReadWorkspace(ctx context.Context, client *tfe.Client, organization string, name string) (*Workspace, error) {
	ws, err := client.Workspaces.Read(ctx, organization, name)
	if errors.Is(err, tfe.ErrResourceNotFound) {
		return nil, fmt.Errorf("workspace %q not found in organization %q", name, organization)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace %q: %w", name, err)
	}

	return &Workspace{
		Name: ws.Name,
		ID:   ws.ID,
	}, nil
}

type NewVariablesConfigOptions struct {
	Organization string
	Backend      map[string]interface{}
	Variables    Variables
	Providers    []Provider
}

// NewVariablesConfig returns a module that manages one tfe_variable per variable on the passed workspace
func NewVariablesConfig(workspace *Workspace, config *NewVariablesConfigOptions) *tfconfig.Module {
	module := tfconfig.NewModule()

	if config.Backend != nil {
		module.Terraform.Backend = config.Backend
	}

	module.AppendData("tfe_workspace", "target", tfeprovider.WorkspaceData{
		Name:         workspace.Name,
		Organization: config.Organization,
	})

	for _, r := range config.Variables.ToResource(workspaceRef) {
		module.AppendResource("tfe_variable", r.Key, r)
	}

	AddProviders(module, config.Providers)

	return module
}

// WillDestroy parses a plan to look for whether the delete action is associated with any target resource
func WillDestroy(plan *tfjson.Plan, targetType string) bool {
	for _, rc := range plan.ResourceChanges {
		if rc.Type == targetType {
			for _, action := range rc.Change.Actions {
				if action == tfjson.ActionDelete {
					return true
				}
			}
		}
	}

	return false
}

const redacted = "(sensitive value)"

// RedactPlan replaces the values of sensitive tfe_variable changes so the plan can be
// exposed as an action output
func RedactPlan(plan *tfjson.Plan) {
	for _, rc := range plan.ResourceChanges {
		if rc.Type != "tfe_variable" || rc.Change == nil {
			continue
		}

		redactValue(rc.Change.Before)
		redactValue(rc.Change.After)
	}
}

func redactValue(state interface{}) {
	attrs, ok := state.(map[string]interface{})
	if !ok {
		return
	}

	if sensitive, _ := attrs["sensitive"].(bool); sensitive {
		if _, ok := attrs["value"]; ok {
			attrs["value"] = redacted
		}
	}
}

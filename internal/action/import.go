package action

import (
	"context"
	"fmt"

	tfe "github.com/hashicorp/go-tfe"
	"github.com/hashicorp/terraform-exec/tfexec"
	tfjson "github.com/hashicorp/terraform-json"
	"github.com/sethvargo/go-githubactions"
)

var maxPageSize int = 100

type TerraformCLI interface {
	Show(context.Context, ...tfexec.ShowOption) (*tfjson.State, error)
	Import(context.Context, string, string, ...tfexec.ImportOption) error
}

func shouldImport(ctx context.Context, tf TerraformCLI, address string) (bool, error) {
	state, err := tf.Show(ctx)
	if err != nil {
		return false, err
	}

	if state.Values == nil || state.Values.RootModule == nil {
		return true, nil
	}

	for _, r := range state.Values.RootModule.Resources {
		if address == r.Address {
			return false, nil
		}
	}

	return true, nil
}

func fetchVariableByKey(ctx context.Context, client *tfe.Client, key string, workspaceID string, page int) (*tfe.Variable, error) {
	vs, err := client.Variables.List(ctx, workspaceID, tfe.VariableListOptions{
		ListOptions: tfe.ListOptions{
			PageNumber: page,
			PageSize:   maxPageSize,
		},
	})
	if err != nil {
		return nil, err
	}

	for _, v := range vs.Items {
		if v.Key == key {
			return v, nil
		}
	}

	if vs.Pagination != nil && vs.NextPage > page {
		return fetchVariableByKey(ctx, client, key, workspaceID, vs.NextPage)
	}

	return nil, nil
}

// ImportVariable imports an existing workspace variable into Terraform state so applying
// the module updates it instead of failing on a duplicate key
func ImportVariable(ctx context.Context, tf TerraformCLI, client *tfe.Client, variable VariablesItem, workspace *Workspace, organization string, opts ...tfexec.ImportOption) error {
	address := variable.Address()

	imp, err := shouldImport(ctx, tf, address)
	if err != nil {
		return err
	}

	if !imp {
		githubactions.Infof("Variable %q already exists in state, skipping import\n", address)
		return nil
	}

	v, err := fetchVariableByKey(ctx, client, variable.Key, workspace.ID, 1)
	if err != nil {
		return err
	}

	if v == nil {
		githubactions.Infof("Variable %q for workspace %q not found, skipping import\n", variable.Key, workspace.Name)
		return nil
	}

	if v.Category != tfe.CategoryEnv {
		return fmt.Errorf("variable %q already exists on workspace %q as a %s variable", variable.Key, workspace.Name, v.Category)
	}

	githubactions.Infof("Importing variable: %q\n", address)

	importID := fmt.Sprintf("%s/%s/%s", organization, workspace.Name, v.ID)

	if err = tf.Import(ctx, address, importID, opts...); err != nil {
		return err
	}

	githubactions.Infof("Variable %q successfully imported\n", importID)

	return nil
}

// ImportVariables imports every passed variable that already exists on the workspace
func ImportVariables(ctx context.Context, tf TerraformCLI, client *tfe.Client, variables Variables, workspace *Workspace, organization string) error {
	for _, v := range variables {
		if err := ImportVariable(ctx, tf, client, v, workspace, organization); err != nil {
			return fmt.Errorf("failed to import variable %q: %w", v.Key, err)
		}
	}

	return nil
}

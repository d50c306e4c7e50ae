package action

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/hashicorp/go-version"
	install "github.com/hashicorp/hc-install"
	"github.com/hashicorp/hc-install/product"
	"github.com/hashicorp/hc-install/releases"
	"github.com/hashicorp/hc-install/src"
	"github.com/hashicorp/terraform-exec/tfexec"
	tfjson "github.com/hashicorp/terraform-json"
	"github.com/sethvargo/go-githubactions"
	"github.com/takescoop/cicd-variables-action/internal/tfconfig"
)

func NewTerraformExec(ctx context.Context, workDir string, tfVersion string) (*tfexec.Terraform, error) {
	v, err := version.NewVersion(tfVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Terraform version: %w", err)
	}

	installer := install.NewInstaller()
	execPath, err := installer.Ensure(ctx, []src.Source{
		&releases.ExactVersion{
			Product: product.Terraform,
			Version: v,
		},
	})

	if err != nil {
		return nil, err
	}

	return tfexec.NewTerraform(workDir, execPath)
}

func writeTerraformrcFile(host string, token string) error {
	b := []byte(fmt.Sprintf(`credentials %q { token = %q	}`, host, token))

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to retrieve homedir: %w", err)
	}

	err = os.WriteFile(path.Join(home, ".terraformrc"), b, 0600)
	if err != nil {
		return fmt.Errorf("failed to write Terraform Cloud credentials to home directory: %w", err)
	}

	return nil
}

// TerraformInit writes the module to filePath and initializes the working directory
func TerraformInit(ctx context.Context, tf *tfexec.Terraform, module *tfconfig.Module, filePath string) error {
	if err := module.WriteFile(filePath); err != nil {
		return err
	}

	if err := tf.Init(ctx); err != nil {
		return fmt.Errorf("failed to run init: %w", err)
	}

	return nil
}

// PlanOutput is the part of a plan exposed as the plan_json output
type PlanOutput struct {
	FormatVersion   string                   `json:"format_version,omitempty"`
	ResourceChanges []*tfjson.ResourceChange `json:"resource_changes,omitempty"`
}

// Plan runs a plan into planPath and reports whether there are changes. The plan is
// rejected when it deletes variables and deletion is not allowed.
func Plan(ctx context.Context, tf *tfexec.Terraform, planPath string, allowDeletion bool) (bool, error) {
	diff, err := tf.Plan(ctx, tfexec.Out(planPath))
	if err != nil {
		return false, fmt.Errorf("failed to plan: %w", err)
	}

	if !diff {
		githubactions.Infof("No changes\n")
		return false, nil
	}

	planStr, err := tf.ShowPlanFileRaw(ctx, planPath)
	if err != nil {
		return false, fmt.Errorf("failed to show plan: %w", err)
	}

	githubactions.Infof("%s\n", planStr)
	githubactions.SetOutput("plan", planStr)

	plan, err := tf.ShowPlanFile(ctx, planPath)
	if err != nil {
		return false, fmt.Errorf("failed to create plan struct: %w", err)
	}

	RedactPlan(plan)

	b, err := json.Marshal(PlanOutput{
		FormatVersion:   plan.FormatVersion,
		ResourceChanges: plan.ResourceChanges,
	})
	if err != nil {
		return false, fmt.Errorf("failed to convert plan to JSON: %w", err)
	}

	githubactions.SetOutput("plan_json", string(b))

	if !allowDeletion && WillDestroy(plan, "tfe_variable") {
		return false, fmt.Errorf("allow_variable_deletion must be true to remove variables from the workspace")
	}

	return true, nil
}

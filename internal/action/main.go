package action

import (
	"context"
	"fmt"
	"os"
	"path"

	tfe "github.com/hashicorp/go-tfe"
	"github.com/hashicorp/terraform-exec/tfexec"
	"github.com/sethvargo/go-githubactions"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
	"github.com/takescoop/cicd-variables-action/internal/tfconfig"
)

type RunConfig struct {
	Catalog         string
	CatalogFile     string
	ProjectPath     string
	OutputDir       string
	VerifyDocument  string
	ExpectedTotal   *int
	ExpectedSecrets *int

	Token                  string
	Host                   string
	Organization           string
	Workspace              string
	RunnerTerraformVersion string
	TFEProviderVersion     string
	BackendConfig          string
	Import                 bool
	Apply                  bool
	AllowVariableDeletion  bool

	// Lookup resolves variable values from the runner environment, os.LookupEnv when nil
	Lookup LookupFunc
}

func (c *RunConfig) lookup() LookupFunc {
	if c.Lookup != nil {
		return c.Lookup
	}

	return os.LookupEnv
}

func intOr(i *int, def int) int {
	if i == nil {
		return def
	}

	return *i
}

// Run builds and verifies the catalog, renders its documents and, when a workspace is
// configured, publishes the variables to it
func Run(ctx context.Context, config *RunConfig) error {
	catalog, err := LoadCatalog(config)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if n := MaskSecrets(catalog, config.lookup()); n > 0 {
		githubactions.Infof("Masked %d secret values\n", n)
	}

	if err := envvars.Verify(catalog); err != nil {
		return fmt.Errorf("catalog failed verification: %w", err)
	}

	if err := envvars.ExpectCounts(catalog, intOr(config.ExpectedTotal, -1), intOr(config.ExpectedSecrets, -1)); err != nil {
		return fmt.Errorf("catalog does not match the expected counts: %w", err)
	}

	documents, err := RenderDocuments(catalog)
	if err != nil {
		return fmt.Errorf("failed to render documents: %w", err)
	}

	if config.OutputDir != "" {
		written, err := documents.Write(config.OutputDir)
		if err != nil {
			return err
		}

		for _, p := range written {
			githubactions.Infof("Wrote %s\n", p)
		}
	}

	if err := documents.SetOutputs(); err != nil {
		return err
	}

	if config.VerifyDocument != "" {
		if err := VerifyDocument(config.VerifyDocument, catalog); err != nil {
			return err
		}

		githubactions.Infof("Document %s matches the catalog\n", config.VerifyDocument)
	}

	if config.Workspace == "" {
		githubactions.Infof("No workspace configured, skipping publish\n")
		return nil
	}

	return Publish(ctx, config, catalog)
}

// Publish manages the catalog variables on the configured Terraform Cloud workspace
func Publish(ctx context.Context, config *RunConfig, catalog *envvars.Catalog) error {
	client, err := tfe.NewClient(&tfe.Config{
		Address: fmt.Sprintf("https://%s", config.Host),
		Token:   config.Token,
	})
	if err != nil {
		return fmt.Errorf("failed to create Terraform client: %w", err)
	}

	workspace, err := ReadWorkspace(ctx, client, config.Organization, config.Workspace)
	if err != nil {
		return err
	}

	variables, err := NewVariables(catalog, config.lookup())
	if err != nil {
		return err
	}

	backend, err := tfconfig.ParseBackend(config.BackendConfig)
	if err != nil {
		return fmt.Errorf("failed to parse backend configuration: %w", err)
	}

	module := NewVariablesConfig(workspace, &NewVariablesConfigOptions{
		Organization: config.Organization,
		Backend:      backend,
		Variables:    variables,
		Providers:    []Provider{NewTFEProvider(config.Host, config.TFEProviderVersion)},
	})

	workDir, err := os.MkdirTemp("", "cicd-variables")
	if err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}

	defer os.RemoveAll(workDir)

	if err := writeTerraformrcFile(config.Host, config.Token); err != nil {
		return err
	}

	tf, err := NewTerraformExec(ctx, workDir, config.RunnerTerraformVersion)
	if err != nil {
		return fmt.Errorf("failed to create tfexec instance: %w", err)
	}

	if err := TerraformInit(ctx, tf, module, path.Join(workDir, "main.tf.json")); err != nil {
		return fmt.Errorf("failed to initialize the Terraform configuration: %w", err)
	}

	if config.Import {
		if err := ImportVariables(ctx, tf, client, variables, workspace, config.Organization); err != nil {
			return err
		}
	}

	planPath := "plan.txt"

	diff, err := Plan(ctx, tf, planPath, config.AllowVariableDeletion)
	if err != nil {
		return err
	}

	if config.Apply && diff {
		githubactions.Infof("Applying...\n")

		if err := tf.Apply(ctx, tfexec.DirOrPlan(planPath)); err != nil {
			return fmt.Errorf("failed to apply: %w", err)
		}

		githubactions.Infof("Success\n")
	}

	return nil
}

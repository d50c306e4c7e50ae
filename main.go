package main

import (
	"context"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"github.com/takescoop/cicd-variables-action/internal/action"
	"github.com/takescoop/cicd-variables-action/internal/inputs"
)

func main() {
	expectedTotal, err := inputs.GetIntPtr("expected_total")
	if err != nil {
		githubactions.Fatalf("%s", err)
	}

	expectedSecrets, err := inputs.GetIntPtr("expected_secrets")
	if err != nil {
		githubactions.Fatalf("%s", err)
	}

	config := &action.RunConfig{
		Catalog:         strings.TrimSpace(githubactions.GetInput("catalog")),
		CatalogFile:     githubactions.GetInput("catalog_file"),
		ProjectPath:     githubactions.GetInput("project_path"),
		OutputDir:       githubactions.GetInput("output_dir"),
		VerifyDocument:  githubactions.GetInput("verify_document"),
		ExpectedTotal:   expectedTotal,
		ExpectedSecrets: expectedSecrets,

		Token:                  githubactions.GetInput("terraform_token"),
		Host:                   inputs.GetString("terraform_host", "app.terraform.io"),
		Organization:           githubactions.GetInput("terraform_organization"),
		Workspace:              strings.TrimSpace(githubactions.GetInput("workspace")),
		RunnerTerraformVersion: inputs.GetString("runner_terraform_version", "1.0.5"),
		TFEProviderVersion:     inputs.GetString("tfe_provider_version", "0.26.1"),
		BackendConfig:          githubactions.GetInput("backend_config"),
		Import:                 inputs.GetBool("import"),
		Apply:                  inputs.GetBool("apply"),
		AllowVariableDeletion:  inputs.GetBool("allow_variable_deletion"),
	}

	if config.Token != "" {
		githubactions.AddMask(config.Token)
	}

	if err := action.Run(context.Background(), config); err != nil {
		githubactions.Fatalf("%s", err)
	}
}

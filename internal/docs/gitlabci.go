package docs

import (
	"fmt"
	"strings"

	"github.com/takescoop/cicd-variables-action/internal/envvars"
	yaml "gopkg.in/yaml.v2"
)

// DocumentFile is the file name the operator document is written to
const DocumentFile = "GITLAB_VARIABLES.md"

// pipelineCategories are the categories whose values are safe to commit to .gitlab-ci.yml
var pipelineCategories = map[envvars.Category]bool{
	envvars.CategoryConfig:  true,
	envvars.CategoryGeneral: true,
	envvars.CategoryPort:    true,
}

// RenderGitLabCI returns the variables block of .gitlab-ci.yml. Only non-sensitive
// configuration, general and port variables are included; the rest belong in the
// settings panel. The result is empty when no variable qualifies.
func RenderGitLabCI(c *envvars.Catalog) (string, error) {
	vars := yaml.MapSlice{}

	for _, v := range c.Variables {
		if v.IsSecret() || v.Masked || !pipelineCategories[v.Category] {
			continue
		}

		vars = append(vars, yaml.MapItem{Key: v.Name, Value: v.Example})
	}

	if len(vars) == 0 {
		return "", nil
	}

	b, err := yaml.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pipeline variables: %w", err)
	}

	var out strings.Builder

	out.WriteString("variables:\n")
	out.WriteString("  # Non-sensitive environment variables\n")

	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		out.WriteString("  " + line + "\n")
	}

	out.WriteString("\n")
	out.WriteString("  # Sensitive variables (passwords, secrets, keys) are set in:\n")
	out.WriteString("  # GitLab → " + SettingsPath + "\n")
	out.WriteString("  # See " + DocumentFile + " for details\n")

	return out.String(), nil
}

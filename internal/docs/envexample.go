package docs

import (
	"fmt"
	"strings"

	"github.com/takescoop/cicd-variables-action/internal/envvars"
)

var envExampleTitles = map[envvars.Category]string{
	envvars.CategorySecret:   "Secrets (DO NOT COMMIT REAL VALUES)",
	envvars.CategoryDatabase: "Database Configuration",
	envvars.CategoryURL:      "Service URLs",
	envvars.CategoryConfig:   "Application Configuration",
	envvars.CategoryCI:       "CI/CD Configuration",
	envvars.CategoryPort:     "Ports",
	envvars.CategoryGeneral:  "General Settings",
}

// SecretTemplate is the value written for a secret in .env.example
func SecretTemplate(name string) string {
	return fmt.Sprintf("<YOUR_%s_HERE>", name)
}

// RenderEnvExample returns a .env.example with every variable grouped by category.
// Secrets get a template value instead of their example.
func RenderEnvExample(c *envvars.Catalog) string {
	if c.Len() == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("# Environment Variables Example\n")
	b.WriteString("# Copy this file to .env and fill in your values\n")
	b.WriteString("# DO NOT COMMIT .env TO GIT!\n\n")

	for _, g := range c.Groups() {
		title, ok := envExampleTitles[g.Category]
		if !ok {
			title = g.Category.Title()
		}

		fmt.Fprintf(&b, "# %s\n", title)

		for _, v := range g.Variables {
			if v.IsSecret() || v.Masked {
				fmt.Fprintf(&b, "%s=%s\n", v.Name, SecretTemplate(v.Name))
			} else {
				fmt.Fprintf(&b, "%s=%s\n", v.Name, v.Example)
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

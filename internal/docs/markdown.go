// Package docs renders a variable catalog into the files an operator works from
// (GITLAB_VARIABLES.md, .env.example and the variables block of .gitlab-ci.yml)
// and reads rendered Markdown back for verification.
package docs

import (
	"fmt"
	"strings"

	"github.com/takescoop/cicd-variables-action/internal/envvars"
)

const (
	DocumentTitle = "GitLab CI/CD Variables"
	StepsHeading  = "How to add variables in GitLab"
	SettingsPath  = "Settings → CI/CD → Variables"

	flagOn  = "✅"
	flagOff = "❌"
)

func flag(b bool) string {
	if b {
		return flagOn
	}

	return flagOff
}

// code quotes s as a code span that survives a table cell: pipes are escaped and the fence
// is one backtick longer than the longest backtick run in s
func code(s string) string {
	if s == "" {
		return ""
	}

	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}

		run++
		if run > longest {
			longest = run
		}
	}

	fence := strings.Repeat("`", longest+1)

	// a code span drops one space on each side when both are present
	if strings.TrimSpace(s) != "" && (strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") ||
		strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ")) {
		s = " " + s + " "
	}

	return fence + strings.ReplaceAll(s, "|", `\|`) + fence
}

// RenderMarkdown returns the operator document listing every variable by category,
// followed by the steps to add them in the settings panel
func RenderMarkdown(c *envvars.Catalog) string {
	if c.Len() == 0 {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", DocumentTitle)
	b.WriteString("## Required environment variables\n\n")
	b.WriteString("Add the following variables in GitLab:\n\n")
	fmt.Fprintf(&b, "**Path:** `%s`\n\n", SettingsPath)

	for _, g := range c.Groups() {
		fmt.Fprintf(&b, "### %s\n\n", strings.TrimSpace(g.Category.Icon()+" "+g.Category.Title()))
		b.WriteString("| Variable | Type | Protected | Masked | Example |\n")
		b.WriteString("|----------|------|-----------|--------|---------|\n")

		for _, v := range g.Variables {
			kind := v.Kind
			if kind == "" {
				kind = envvars.KindVariable
			}

			fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
				v.Name, kind, flag(v.Protected), flag(v.Masked), code(v.DisplayExample()))
		}

		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "## %s\n\n", StepsHeading)
	b.WriteString("1. Open your project in GitLab\n")
	b.WriteString("2. Go to **Settings → CI/CD**\n")
	b.WriteString("3. Expand the **Variables** section\n")
	b.WriteString("4. Click **Add variable**\n")
	b.WriteString("5. Fill in:\n")
	fmt.Fprintf(&b, "   - **Key**: the variable name (for example, `%s`)\n", c.Variables[0].Name)
	b.WriteString("   - **Value**: the variable value\n")
	fmt.Fprintf(&b, "   - **Type**: `%s`\n", envvars.KindVariable)
	b.WriteString("   - **Protect variable**: " + flagOn + " for sensitive data\n")
	b.WriteString("   - **Mask variable**: " + flagOn + " for secrets (their values are hidden in job logs)\n")
	b.WriteString("6. Click **Add variable**\n")

	return b.String()
}

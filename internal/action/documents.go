package action

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sethvargo/go-githubactions"
	"github.com/takescoop/cicd-variables-action/internal/docs"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
)

const (
	EnvExampleFile = ".env.example"
	GitLabCIFile   = "gitlab-ci-variables.yml"
)

// Documents holds everything rendered from a catalog
type Documents struct {
	Markdown   string
	EnvExample string
	GitLabCI   string
	Summary    envvars.Summary
}

func RenderDocuments(catalog *envvars.Catalog) (*Documents, error) {
	gitlabCI, err := docs.RenderGitLabCI(catalog)
	if err != nil {
		return nil, err
	}

	return &Documents{
		Markdown:   docs.RenderMarkdown(catalog),
		EnvExample: docs.RenderEnvExample(catalog),
		GitLabCI:   gitlabCI,
		Summary:    catalog.Summary(),
	}, nil
}

// Write saves the non-empty documents into dir and returns the written paths
func (d *Documents) Write(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string

	for name, content := range map[string]string{
		docs.DocumentFile: d.Markdown,
		EnvExampleFile:    d.EnvExample,
		GitLabCIFile:      d.GitLabCI,
	} {
		if content == "" {
			continue
		}

		p := filepath.Join(dir, name)

		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}

		written = append(written, p)
	}

	sort.Strings(written)

	return written, nil
}

// SetOutputs exposes the documents as action outputs
func (d *Documents) SetOutputs() error {
	summary, err := json.Marshal(d.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	githubactions.SetOutput("documentation", d.Markdown)
	githubactions.SetOutput("env_example", d.EnvExample)
	githubactions.SetOutput("gitlab_ci", d.GitLabCI)
	githubactions.SetOutput("summary", string(summary))

	return nil
}

// VerifyDocument checks a committed document on its own and against the catalog
func VerifyDocument(path string, catalog *envvars.Catalog) error {
	doc, err := docs.ParseFile(path)
	if err != nil {
		return err
	}

	if err := doc.Verify(); err != nil {
		return fmt.Errorf("document %s is inconsistent: %w", path, err)
	}

	if err := docs.Diff(doc, catalog); err != nil {
		return fmt.Errorf("document %s is out of date: %w", path, err)
	}

	return nil
}

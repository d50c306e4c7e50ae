package action

import (
	"fmt"
	"sort"

	"github.com/sethvargo/go-githubactions"
	"github.com/takescoop/cicd-variables-action/internal/envvars"
)

var builtinCatalogs = map[string]func() *envvars.Catalog{
	"order-service": envvars.OrderService,
}

// BuiltinCatalogs returns the names accepted by the catalog input
func BuiltinCatalogs() []string {
	names := make([]string, 0, len(builtinCatalogs))
	for name := range builtinCatalogs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// LoadCatalog returns the catalog selected by the run configuration: a catalog file,
// the dotenv files of a project, or a built-in catalog, in that order of precedence
func LoadCatalog(config *RunConfig) (*envvars.Catalog, error) {
	switch {
	case config.CatalogFile != "":
		githubactions.Infof("Loading catalog file %s\n", config.CatalogFile)

		return envvars.LoadCatalogFile(config.CatalogFile)
	case config.ProjectPath != "":
		githubactions.Infof("Analyzing environment files in %s\n", config.ProjectPath)

		catalog, err := envvars.Discover(config.ProjectPath)
		if err != nil {
			githubactions.Warningf("Some environment files were skipped: %s", err)
		}

		logDiscovered(catalog)

		return catalog, nil
	default:
		name := config.Catalog
		if name == "" {
			name = "order-service"
		}

		newCatalog, ok := builtinCatalogs[name]
		if !ok {
			return nil, fmt.Errorf("unknown catalog %q, expected one of %v", name, BuiltinCatalogs())
		}

		return newCatalog(), nil
	}
}

func logDiscovered(catalog *envvars.Catalog) {
	if catalog.Len() == 0 {
		githubactions.Warningf("No environment variables found, consider adding a .env.example\n")
		return
	}

	githubactions.Infof("Found %d environment variables\n", catalog.Len())

	for i, v := range catalog.Variables {
		if i == 5 {
			githubactions.Infof("   ... and %d more\n", catalog.Len()-5)
			break
		}

		githubactions.Infof("   -> %s (%s)\n", v.Name, v.Category)
	}
}

package action

import (
	"github.com/takescoop/cicd-variables-action/internal/tfconfig"
	"github.com/takescoop/cicd-variables-action/internal/tfeprovider"
)

type Provider struct {
	Version string
	Source  string
	Name    string
	Config  tfconfig.ProviderConfig
}

// NewTFEProvider returns the tfe provider pinned to version and pointed at host
func NewTFEProvider(host string, version string) Provider {
	return Provider{
		Name:    "tfe",
		Version: version,
		Source:  "hashicorp/tfe",
		Config: tfeprovider.Config{
			Hostname: host,
		},
	}
}

// AddProviders sets the required_providers and provider blocks of the module
func AddProviders(module *tfconfig.Module, providers []Provider) {
	if len(providers) == 0 {
		return
	}

	versions := map[string]tfconfig.RequiredProvider{}
	providerConfigs := map[string]tfconfig.ProviderConfig{}

	for _, p := range providers {
		versions[p.Name] = tfconfig.RequiredProvider{
			Source:  p.Source,
			Version: p.Version,
		}
		providerConfigs[p.Name] = p.Config
	}

	module.Providers = providerConfigs
	module.Terraform.RequiredProviders = versions
}

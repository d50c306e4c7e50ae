package tfconfig

type Terraform struct {
	Backend           map[string]interface{}      `json:"backend,omitempty"`
	RequiredVersion   string                      `json:"required_version,omitempty"`
	RequiredProviders map[string]RequiredProvider `json:"required_providers,omitempty"`
}

type RequiredProvider struct {
	Source  string `json:"source,omitempty"`
	Version string `json:"version,omitempty"`
}

// ProviderConfig is the body of a provider block, e.g. tfeprovider.Config
type ProviderConfig interface{}

package tfeprovider

const CategoryEnv = "env"

// Variable is a tfe_variable resource
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Sensitive   bool   `json:"sensitive,omitempty"`
	WorkspaceID string `json:"workspace_id"`
}

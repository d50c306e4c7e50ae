package tfeprovider

// WorkspaceData is a tfe_workspace data source, used to reference a workspace the
// module does not manage
type WorkspaceData struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

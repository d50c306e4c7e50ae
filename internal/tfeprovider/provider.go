package tfeprovider

// Config is the body of the tfe provider block. The API token is read from the
// Terraform CLI credentials file rather than written into the module.
type Config struct {
	Hostname string `json:"hostname"`
}

package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// UploadLimitMB caps the request body size for uploads.
	UploadLimitMB int `mapstructure:"upload_limit_mb" default:"20"`
	// TemplateURL is where users download the blank upload template.
	TemplateURL string `mapstructure:"template_url" default:""`
	// TemplateObject, when set, serves the template from the storage bucket instead.
	TemplateObject string `mapstructure:"template_object" default:""`
}

// BodyLimit returns the upload limit in bytes, defaulting to 20 MiB.
func (c Config) BodyLimit() int {
	mb := c.UploadLimitMB
	if mb <= 0 {
		mb = 20
	}
	return mb * 1024 * 1024
}

// HasTemplate reports whether a template location is configured.
func (c Config) HasTemplate() bool {
	return c.TemplateURL != "" || c.TemplateObject != ""
}

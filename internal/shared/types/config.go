package types

// Config represents the application configuration. It is sourced from the
// environment and can be overlaid by a TOML, YAML or JSON file.
type Config struct {
	EvccURL        string   `json:"evcc_url" yaml:"evcc_url" toml:"evcc_url"`
	EvccPassword   string   `json:"evcc_password" yaml:"evcc_password" toml:"evcc_password"`
	SMTPServer     string   `json:"smtp_server" yaml:"smtp_server" toml:"smtp_server"`
	SMTPPort       int      `json:"smtp_port" yaml:"smtp_port" toml:"smtp_port"`
	SenderEmail    string   `json:"sender_email" yaml:"sender_email" toml:"sender_email"`
	SenderPassword string   `json:"sender_password" yaml:"sender_password" toml:"sender_password"`
	RecipientEmail string   `json:"recipient_email" yaml:"recipient_email" toml:"recipient_email"`
	SenderName     string   `json:"sender_name" yaml:"sender_name" toml:"sender_name"`
	SenderStreet   string   `json:"sender_street" yaml:"sender_street" toml:"sender_street"`
	SenderCity     string   `json:"sender_city" yaml:"sender_city" toml:"sender_city"`
	Locale         string   `json:"locale" yaml:"locale" toml:"locale"`
	OutputFolder   string   `json:"output_folder" yaml:"output_folder" toml:"output_folder"`
	ReportPrefix   string   `json:"report_prefix" yaml:"report_prefix" toml:"report_prefix"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Engine         string   `json:"engine" yaml:"engine" toml:"engine"`
}

// EmailConfigured reports whether every field required to send the
// notification mail is present. Anything missing means the mail step is
// skipped with a warning, never an error.
func (c *Config) EmailConfigured() bool {
	return c.SMTPServer != "" && c.SenderEmail != "" && c.SenderPassword != "" && c.RecipientEmail != ""
}

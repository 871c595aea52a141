package config

type Email struct {
	ServiceID  string `env:"SERVICE_ID,expand"`
	TemplateID string `env:"TEMPLATE_ID,expand"`
	PublicKey  string `env:"PUBLIC_KEY,expand"`
	Endpoint   string `env:"ENDPOINT,expand"`
}

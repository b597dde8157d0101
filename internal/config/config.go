package config

import "github.com/kelseyhightower/envconfig"

// Config holds the service configuration, parsed from FITLIFE_-prefixed
// environment variables.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Public base URL of the auth routes, used to build OAuth redirect URLs.
	AuthBaseURL string `envconfig:"AUTH_BASE_URL" default:"http://localhost:8080/api/auth"`

	GoogleClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
	GithubClientID     string `envconfig:"GITHUB_CLIENT_ID"`
	GithubClientSecret string `envconfig:"GITHUB_CLIENT_SECRET"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// New parses configuration from the environment. Load a .env file first if
// one should participate.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FITLIFE", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

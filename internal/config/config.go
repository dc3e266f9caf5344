package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the process-wide settings, read once from the environment at
// startup and immutable afterwards.
type Config struct {
	Port     string `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// GitHubAPIBaseURL is overridable so the service can point at a GitHub
	// Enterprise host (or a test double).
	GitHubAPIBaseURL string `env:"GITHUB_API_BASE_URL" envDefault:"https://api.github.com"`

	AppID int64 `env:"GITHUB_APP_ID,notEmpty"`

	// PrivateKey is the GitHub App private key in PEM form. Deployment
	// environments commonly escape the newlines; Load expands them back.
	PrivateKey string `env:"GITHUB_PRIVATE_KEY,notEmpty"`

	WebhookSecret string `env:"WEBHOOK_SECRET,notEmpty"`

	// OutboundTimeout bounds every call to the GitHub API so a hung remote
	// endpoint cannot pin request-handling capacity.
	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"10s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	c.PrivateKey = strings.ReplaceAll(c.PrivateKey, `\n`, "\n")
	c.GitHubAPIBaseURL = strings.TrimRight(c.GitHubAPIBaseURL, "/")

	return &c, nil
}

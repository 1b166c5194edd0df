package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type RelayConfig struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Base of the backend API, e.g. http://backend.internal/api. Shared by the
	// login relay and the admin API client.
	UpstreamBaseURL string        `env:"UPSTREAM_BASE_URL,required,notEmpty"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	// Audit events are disabled when no brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	AuditTopic   string   `env:"AUDIT_TOPIC" envDefault:"admin.audit"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var ErrInvalidUpstream = errors.New("invalid upstream base url")

// NewRelayConfig resolves the configuration once from the environment,
// loading a .env file first when one is present.
func NewRelayConfig() (RelayConfig, error) {
	_ = godotenv.Load()

	c, err := env.ParseAs[RelayConfig]()
	if err != nil {
		return RelayConfig{}, err
	}

	if err = c.normalize(); err != nil {
		return RelayConfig{}, err
	}

	return c, nil
}

func (c *RelayConfig) normalize() error {
	c.UpstreamBaseURL = strings.TrimRight(c.UpstreamBaseURL, "/")

	u, err := url.Parse(c.UpstreamBaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUpstream, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidUpstream, c.UpstreamBaseURL)
	}

	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", c.UpstreamTimeout)
	}

	return nil
}

func (c RelayConfig) AuditEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

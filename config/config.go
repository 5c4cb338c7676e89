package config

import (
	"fmt"
	"time"

	"go-simpler.org/env"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" default:"dev"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	Port     int    `env:"PORT" default:"5000"`
	GinMode  string `env:"GIN_MODE" default:"release"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	Backend      string `env:"ANALYZER_BACKEND" default:"local"`
	MaxBatchSize int    `env:"MAX_BATCH_SIZE" default:"100"`

	Watson WatsonConfig
	Valkey ValkeyConfig
}

type WatsonConfig struct {
	URL     string        `env:"WATSON_URL" default:"https://sn-watson-sentiment-bert.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/SentimentPredict"`
	ModelID string        `env:"WATSON_MODEL_ID" default:"sentiment_aggregated-bert-workflow_lang_multi_stock"`
	Timeout time.Duration `env:"WATSON_TIMEOUT" default:"10s"`
}

// ValkeyConfig enables the result cache when Address is non-empty.
type ValkeyConfig struct {
	Address  string        `env:"VALKEY_ADDRESS"`
	Password string        `env:"VALKEY_PASSWORD"`
	TLS      bool          `env:"VALKEY_TLS" default:"false"`
	TTL      time.Duration `env:"CACHE_TTL" default:"1h"`
}

func (v ValkeyConfig) Enabled() bool {
	return v.Address != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Backend {
	case BackendLocal, BackendRemote:
	default:
		return fmt.Errorf("ANALYZER_BACKEND must be %q or %q, got %q", BackendLocal, BackendRemote, cfg.Backend)
	}

	if cfg.MaxBatchSize < 1 {
		return fmt.Errorf("MAX_BATCH_SIZE must be positive, got %d", cfg.MaxBatchSize)
	}

	if cfg.Backend == BackendRemote && cfg.Watson.URL == "" {
		return fmt.Errorf("WATSON_URL is required for the %s backend", BackendRemote)
	}

	return nil
}

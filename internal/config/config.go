package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Food reference sources.
const (
	FoodSourceBuiltin = "builtin"
	FoodSourceFile    = "file"
	FoodSourceMinio   = "minio"
)

// ErrUnknownFoodSource is returned when FOOD_SOURCE names no known source.
var ErrUnknownFoodSource = errors.New("unknown food source")

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int     `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string  `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP    `envPrefix:"HTTP_"`
	GRPC      GRPC    `envPrefix:"GRPC_"`
	Food      Food    `envPrefix:"FOOD_"`
	Storage   Storage `envPrefix:"MINIO_"`
	Webhook   Webhook `envPrefix:"WEBHOOK_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8000"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// GRPC contains gRPC health server parameters.
type GRPC struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Port    string `env:"PORT" envDefault:"50051"`
}

// Food contains food reference parameters.
// Path is a file path for the file source and an object key for the minio source.
type Food struct {
	Source string `env:"SOURCE" envDefault:"builtin"`
	Path   string `env:"PATH" envDefault:"foods.json"`
	Watch  bool   `env:"WATCH" envDefault:"true"`
}

// Storage contains object storage parameters.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"nutrilog-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"nutrilog-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"nutrilog-reference"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Webhook contains parameters of the free-text ingestion identity.
type Webhook struct {
	UserName string `env:"USER_NAME" envDefault:"Webhook User"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Food.Source {
	case FoodSourceBuiltin, FoodSourceFile, FoodSourceMinio:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFoodSource, c.Food.Source)
	}

	if c.Food.Source != FoodSourceBuiltin && c.Food.Path == "" {
		return errors.New("food path is required for non-builtin source")
	}

	return nil
}

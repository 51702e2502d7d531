package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Session   SessionConfig   `mapstructure:"session"`
	Views     ViewsConfig     `mapstructure:"views"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Billing   BillingConfig   `mapstructure:"billing"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port               int `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeoutSec     int `mapstructure:"read_timeout_seconds" envconfig:"SERVER_READ_TIMEOUT_SECONDS"`
	WriteTimeoutSec    int `mapstructure:"write_timeout_seconds" envconfig:"SERVER_WRITE_TIMEOUT_SECONDS"`
	ShutdownTimeoutSec int `mapstructure:"shutdown_timeout_seconds" envconfig:"SERVER_SHUTDOWN_TIMEOUT_SECONDS"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret" envconfig:"JWT_SECRET"`
	ExpiryHours int    `mapstructure:"expiry_hours" envconfig:"JWT_EXPIRY_HOURS"`
}

type SessionConfig struct {
	FilePath string `mapstructure:"file_path" envconfig:"SESSION_FILE_PATH"`
}

type ViewsConfig struct {
	Strict bool `mapstructure:"strict" envconfig:"VIEWS_STRICT"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" envconfig:"RATE_LIMIT_RPS"`
	Burst             int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods []string `mapstructure:"allowed_methods" envconfig:"CORS_ALLOWED_METHODS"`
	AllowedHeaders []string `mapstructure:"allowed_headers" envconfig:"CORS_ALLOWED_HEADERS"`
}

type BillingConfig struct {
	SweepSchedule string `mapstructure:"sweep_schedule" envconfig:"BILLING_SWEEP_SCHEDULE"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace" envconfig:"METRICS_NAMESPACE"`
}

// Load reads config.yaml, then applies PORTAL_* environment overrides.
// A .env file is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("PORTAL", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout_seconds", 15)
	viper.SetDefault("server.write_timeout_seconds", 15)
	viper.SetDefault("server.shutdown_timeout_seconds", 10)
	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("session.file_path", "data/session.json")
	viper.SetDefault("views.strict", false)
	viper.SetDefault("rate_limit.requests_per_second", 50)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"})
	viper.SetDefault("billing.sweep_schedule", "0 1 * * *")
	viper.SetDefault("metrics.namespace", "portal")
}

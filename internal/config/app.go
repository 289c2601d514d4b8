package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultConfigPath = "config.yaml"

type HTTPServer struct {
	Port                   string `mapstructure:"port"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Provider struct {
	BaseURL string `mapstructure:"base_url"`
}

type Wallet struct {
	StrictBids               bool `mapstructure:"strict_bids"`
	ActivationTimeoutSeconds int  `mapstructure:"activation_timeout_seconds"`
}

type Scheduler struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Cache struct {
	MaxActivations int64 `mapstructure:"max_activations"`
	TTLSeconds     int   `mapstructure:"ttl_seconds"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Provider   Provider   `mapstructure:"provider"`
	Wallet     Wallet     `mapstructure:"wallet"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Logging    Logging    `mapstructure:"logging"`
	Cache      Cache      `mapstructure:"cache"`
}

func (c HTTPClient) Timeout() time.Duration { return seconds(c.TimeoutSeconds) }

func (c Wallet) ActivationTimeout() time.Duration { return seconds(c.ActivationTimeoutSeconds) }

func (c Scheduler) Interval() time.Duration { return seconds(c.IntervalSeconds) }

func (c Cache) TTL() time.Duration { return seconds(c.TTLSeconds) }

func (c HTTPServer) ShutdownTimeout() time.Duration { return seconds(c.ShutdownTimeoutSeconds) }

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

// Init loads config.yaml from the working directory.
func Init() (*AppConfig, error) {
	return Load(DefaultConfigPath)
}

// Load reads the YAML file at path, applies defaults and env overrides.
// A missing config file or .env is not an error.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("provider.base_url", "https://economia.awesomeapi.com.br/json/all")
	v.SetDefault("wallet.strict_bids", false)
	v.SetDefault("wallet.activation_timeout_seconds", 15)
	v.SetDefault("scheduler.interval_seconds", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("cache.max_activations", 128)
	v.SetDefault("cache.ttl_seconds", 3600)

	// http env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// wallet env vars
	_ = v.BindEnv("provider.base_url", "PROVIDER_BASE_URL")
	_ = v.BindEnv("wallet.strict_bids", "WALLET_STRICT_BIDS")
	_ = v.BindEnv("wallet.activation_timeout_seconds", "WALLET_ACTIVATION_TIMEOUT_SECONDS")
	_ = v.BindEnv("scheduler.interval_seconds", "SCHEDULER_INTERVAL_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

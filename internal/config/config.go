package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is read once at startup from config.toml (./config, then .) with
// environment variables taking precedence. Everything has a usable default,
// so the service also boots with no file and no environment at all.
type Config struct {
	ServiceHost string
	ServicePort int

	ClassifierURL           string
	ClassifierModel         string
	ClassifierToken         string
	ClassifierWarmupSeconds int
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ServiceHost", "")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("ClassifierURL", "https://api-inference.huggingface.co")
	viper.SetDefault("ClassifierModel", "facebook/bart-large-mnli")
	viper.SetDefault("ClassifierWarmupSeconds", 90)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine, defaults and environment
		// cover every setting.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Environment wins over the file.
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.ServicePort = p
	}
	if url := os.Getenv("HF_API_URL"); url != "" {
		cfg.ClassifierURL = url
	}
	if model := os.Getenv("HF_MODEL"); model != "" {
		cfg.ClassifierModel = model
	}
	if token := os.Getenv("HF_API_TOKEN"); token != "" {
		cfg.ClassifierToken = token
	}

	log.Info("config parsed")

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}

// WarmupTimeout bounds the one-time model load at startup. Request-time
// classification calls are deliberately unbounded: a slow call blocks the
// request that made it and nothing else.
func (c *Config) WarmupTimeout() time.Duration {
	return time.Duration(c.ClassifierWarmupSeconds) * time.Second
}

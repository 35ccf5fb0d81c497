package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	BaseURL       string
	HTTPTimeout   time.Duration
	StatusTimeout time.Duration

	// Executor settings, only required by the execute command.
	RPCUrl     string
	PrivateKey string
}

var globalConfig *Config

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetConfigName(".wheelx")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	// Set default values
	viper.SetDefault("base_url", "https://wheelx.fi")
	viper.SetDefault("http_timeout_seconds", 30)
	viper.SetDefault("status_timeout_seconds", 5)

	// Read from environment variables
	viper.SetEnvPrefix("WHEELX")
	viper.AutomaticEnv()

	// Read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		BaseURL:       viper.GetString("base_url"),
		HTTPTimeout:   time.Duration(viper.GetInt("http_timeout_seconds")) * time.Second,
		StatusTimeout: time.Duration(viper.GetInt("status_timeout_seconds")) * time.Second,
		RPCUrl:        viper.GetString("rpc_url"),
		PrivateKey:    viper.GetString("private_key"),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL must not be empty. Set WHEELX_BASE_URL or base_url in .wheelx.yaml")
	}

	globalConfig = cfg
	return cfg, nil
}

// RequireExecutor validates the settings needed to sign and send
// transactions.
func (c *Config) RequireExecutor() error {
	if c.RPCUrl == "" {
		return fmt.Errorf("RPC URL not configured. Set WHEELX_RPC_URL to an EVM JSON-RPC endpoint")
	}
	if c.PrivateKey == "" {
		return fmt.Errorf("private key not configured. Set WHEELX_PRIVATE_KEY to sign transactions")
	}
	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}

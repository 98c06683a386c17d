package config

import (
	"fmt"

	model "auction-house/internal/models"

	"github.com/spf13/viper"
)

// Configuration keys
const (
	Port         = "server.port"
	LogLevel     = "logging.level"
	LogFormat    = "logging.format"
	SeedEnabled  = "seed.enabled"
	SeedAuctions = "seed.auctions"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig lists the auctions pre-loaded at startup
type SeedConfig struct {
	Enabled  bool                `mapstructure:"enabled"`
	Auctions []model.SeedAuction `mapstructure:"auctions"`
}

// DefaultSeedAuctions are loaded when no seed list is configured
func DefaultSeedAuctions() []model.SeedAuction {
	return []model.SeedAuction{
		{Item: "Antique Vase", StartingBid: 100.0},
		{Item: "Vintage Car", StartingBid: 5000.0},
		{Item: "Rare Painting", StartingBid: 1500.0},
	}
}

// LoadConfig loads configuration from defaults, an optional config.yaml and
// environment variables
func LoadConfig() (*Config, error) {
	return load(viper.New(), "")
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	return load(viper.New(), configPath)
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variable mappings
	_ = v.BindEnv(Port, "PORT")
	_ = v.BindEnv(LogLevel, "LOG_LEVEL")
	_ = v.BindEnv(LogFormat, "LOG_FORMAT")
	_ = v.BindEnv(SeedEnabled, "SEED_ENABLED")

	// Read config file (optional, will use defaults and env vars if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Seed.Auctions) == 0 {
		cfg.Seed.Auctions = DefaultSeedAuctions()
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault(Port, "8080")
	v.SetDefault(LogLevel, "info")
	v.SetDefault(LogFormat, "json")
	v.SetDefault(SeedEnabled, true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", c.Logging.Format)
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// SeedList returns the auctions to pre-load, or nil when seeding is disabled
func (c *Config) SeedList() []model.SeedAuction {
	if !c.Seed.Enabled {
		return nil
	}
	return c.Seed.Auctions
}

// Package config provides the process-wide client configuration: pinned
// client versions, remote endpoints, HTTP and logging settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the client
type Config struct {
	Versions  VersionConfig  `yaml:"versions"`
	Endpoints EndpointConfig `yaml:"endpoints"`
	HTTP      HTTPConfig     `yaml:"http"`
	Log       LogConfig      `yaml:"log"`
}

// VersionConfig holds the version strings the remote service expects.
// They are pinned, never negotiated.
type VersionConfig struct {
	Game     string `yaml:"game"`
	Launcher string `yaml:"launcher"`
	Unity    string `yaml:"unity"`
	Backend  string `yaml:"backend"`
	Branch   string `yaml:"branch"`
}

// EndpointConfig holds the base URLs of the remote service
type EndpointConfig struct {
	Launcher string `yaml:"launcher"`
	Prod     string `yaml:"prod"`
	Trading  string `yaml:"trading"`
	Ragfair  string `yaml:"ragfair"`
}

// HTTPConfig holds transport configuration
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Versions: VersionConfig{
			Game:     "0.12.2.5485",
			Launcher: "0.9.1.935",
			Unity:    "2018.4.13f1",
			Backend:  "6",
			Branch:   "live",
		},
		Endpoints: EndpointConfig{
			Launcher: "https://launcher.escapefromtarkov.com",
			Prod:     "https://prod.escapefromtarkov.com",
			Trading:  "https://trading.escapefromtarkov.com",
			Ragfair:  "https://ragfair.escapefromtarkov.com",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:    "off",
			Encoding: "json",
		},
	}
}

// Load loads configuration from environment with defaults
func Load() *Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// LoadFile loads a YAML file over the defaults. Environment variables are
// applied last and win over the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Versions.Game = getEnv("TARKOV_GAME_VERSION", c.Versions.Game)
	c.Versions.Launcher = getEnv("TARKOV_LAUNCHER_VERSION", c.Versions.Launcher)
	c.Versions.Unity = getEnv("TARKOV_UNITY_VERSION", c.Versions.Unity)
	c.Versions.Backend = getEnv("TARKOV_BACKEND_VERSION", c.Versions.Backend)
	c.Versions.Branch = getEnv("TARKOV_BRANCH", c.Versions.Branch)

	c.Endpoints.Launcher = getEnv("TARKOV_LAUNCHER_ENDPOINT", c.Endpoints.Launcher)
	c.Endpoints.Prod = getEnv("TARKOV_PROD_ENDPOINT", c.Endpoints.Prod)
	c.Endpoints.Trading = getEnv("TARKOV_TRADING_ENDPOINT", c.Endpoints.Trading)
	c.Endpoints.Ragfair = getEnv("TARKOV_RAGFAIR_ENDPOINT", c.Endpoints.Ragfair)

	if v := os.Getenv("TARKOV_HTTP_TIMEOUT"); v != "" {
		// Malformed values keep the previous timeout.
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.HTTP.Timeout = d
		}
	}

	c.Log.Level = getEnv("TARKOV_LOG_LEVEL", c.Log.Level)
	c.Log.Encoding = getEnv("TARKOV_LOG_ENCODING", c.Log.Encoding)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

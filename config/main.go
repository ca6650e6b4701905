package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/netrixframework/evd/dist"
)

var (
	// ConfigPath is the variable which stores the config path command line parameter
	ConfigPath string
)

// DefaultServerAddr is the address the API server listens on when none is configured
const DefaultServerAddr = "0.0.0.0:7075"

// Config stores the config for the tool
type Config struct {
	// APIServerAddr address of the APIServer
	APIServerAddr string `json:"server_addr"`
	// Seed used for random draws when a request does not carry one.
	// Unset means draws are seeded from system entropy
	Seed *uint64 `json:"seed,omitempty"`
	// LogConfig configuration for logging
	LogConfig LogConfig `json:"log"`
}

// LogConfig stores the config for logging purpose
type LogConfig struct {
	// Path of the log file
	Path string `json:"path"`
	// Format to log. Only `json` is currently supported
	Format string `json:"format"`
	// Level log level, one of panic|fatal|error|warn|warning|info|debug|trace
	Level string `json:"level"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		APIServerAddr: DefaultServerAddr,
		LogConfig: LogConfig{
			Path:   "",
			Format: "json",
			Level:  "info",
		},
	}
}

// DefaultSeed returns the seed selector for draws that do not specify one
func (c *Config) DefaultSeed() dist.Seed {
	if c.Seed == nil {
		return dist.Unseeded()
	}
	return dist.WithSeed(*c.Seed)
}

// ParseConfig parses config from the specified file
func ParseConfig(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defaultConfig := DefaultConfig()
	err = json.Unmarshal(bytes, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return defaultConfig, nil
}

// LoadConfig is ParseConfig that falls back to DefaultConfig when the file
// does not exist
func LoadConfig(path string) (*Config, error) {
	c, err := ParseConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return c, err
}

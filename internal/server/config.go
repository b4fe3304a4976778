package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/randkit/rng"
)

// Config represents the complete service configuration.
type Config struct {
	Server  Settings       `hcl:"server,block"`
	Streams []StreamConfig `hcl:"stream,block"`
}

// Settings contains server-level configuration.
type Settings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// StreamConfig defines one named generator stream clients can draw from.
// A zero Seed means every server start picks a fresh entropy seed; a fixed
// seed makes the stream reproducible across restarts and connections.
type StreamConfig struct {
	Name      string `hcl:"name,label"`
	Algorithm string `hcl:"algorithm,optional"`
	Seed      uint64 `hcl:"seed,optional"`
	MaxBatch  int    `hcl:"max_batch,optional"`
}

// DefaultConfig returns the configuration used when no file is present: one
// entropy-seeded stream of the invertible generator.
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Streams: []StreamConfig{
			{Name: "default", Algorithm: "rewind", MaxBatch: 4096},
		},
	}
}

// LoadConfig loads service configuration from an HCL file, falling back to
// DefaultConfig when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if len(config.Streams) == 0 {
		config.Streams = DefaultConfig().Streams
	}
	for i := range config.Streams {
		if config.Streams[i].Algorithm == "" {
			config.Streams[i].Algorithm = "rewind"
		}
		if config.Streams[i].MaxBatch == 0 {
			config.Streams[i].MaxBatch = 4096
		}
	}

	return &config, nil
}

// Validate validates the service configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	seen := make(map[string]bool)
	for _, s := range c.Streams {
		if s.Name == "" {
			return fmt.Errorf("stream with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate stream name: %s", s.Name)
		}
		seen[s.Name] = true
		if _, err := rng.NewSource(s.Algorithm, 0); err != nil {
			return fmt.Errorf("stream %s: %w", s.Name, err)
		}
		if s.MaxBatch < 1 {
			return fmt.Errorf("stream %s: max_batch must be positive", s.Name)
		}
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ServerConfig holds process-level settings for the HTTP service. It can
// be populated from a TOML file; command-line flags override file values.
type ServerConfig struct {
	Port        string          `toml:"port"`
	DataDir     string          `toml:"data_dir"`
	DatasetPath string          `toml:"dataset"`
	Scanner     ScannerSettings `toml:"scanner"`
}

// LoadServerConfig decodes a TOML config file into a ServerConfig and
// applies scanner defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	var cfg ServerConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	cfg.Scanner.ApplyDefaults()
	return &cfg, nil
}

// Package project models the lumos.yaml project configuration shared by
// `lumos init` and `lumos generate`.
package project

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the conventional configuration file name.
const ConfigFile = "lumos.yaml"

// Config is the on-disk project configuration.
type Config struct {
	// Schema is the schema file path, relative to the config file.
	Schema string `yaml:"schema"`
	Output Output `yaml:"output"`
}

// Output configures where generated files are written.
type Output struct {
	// Directory for generated files, relative to the config file.
	Directory string `yaml:"directory"`
	// Rust output file name.
	Rust string `yaml:"rust"`
	// TypeScript output file name.
	TypeScript string `yaml:"typescript"`
	// Descriptor is the wire descriptor JSON file name; empty disables it.
	Descriptor string `yaml:"descriptor,omitempty"`
}

// Default returns the configuration written by `lumos init`.
func Default() Config {
	return Config{
		Schema: "schema.lumos",
		Output: Output{
			Directory:  ".",
			Rust:       "generated.rs",
			TypeScript: "generated.ts",
			Descriptor: "generated.schema.json",
		},
	}
}

// Load reads a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config file.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

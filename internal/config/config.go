package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file finanztrack looks for in its home directory.
const FileName = "finanztrack.yaml"

// Config represents the top-level finanztrack.yaml configuration. Display
// settings (currency, theme) travel with the ledger blob, not here; this
// file only says where and how the ledger is stored.
type Config struct {
	DataDir string        `yaml:"data_dir"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend    string `yaml:"backend"` // file, sqlite, or memory
	SQLitePath string `yaml:"sqlite_path,omitempty"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name, e.g. "info"
}

// Load reads a finanztrack.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads the config at path, falling back to defaults rooted at
// dataDir when the file does not exist.
func LoadOrDefault(path, dataDir string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(dataDir), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults rooted at dataDir.
func Default(dataDir string) *Config {
	return &Config{
		DataDir: dataDir,
		Storage: StorageConfig{
			Backend:    "file",
			SQLitePath: filepath.Join(dataDir, "finanztrack.db"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

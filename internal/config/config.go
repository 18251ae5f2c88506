// Package config resolves data file paths and defaults from a TOML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "neo.toml"

// Config holds the resolved settings.
type Config struct {
	NEOFile  string `toml:"neo_file"`
	CADFile  string `toml:"cad_file"`
	LogLevel string `toml:"log_level"`
	Limit    int    `toml:"limit"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		NEOFile:  filepath.Join("data", "neos.csv"),
		CADFile:  filepath.Join("data", "cad.json"),
		LogLevel: "info",
	}
}

// Load applies, in order, the defaults, the TOML file at path and the
// environment. An empty path reads DefaultFile only if it exists; an explicit
// path must exist.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if cfg.Limit < 0 {
		return Config{}, errors.New("limit must not be negative")
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv("NEO_DATA_DIR"); dir != "" {
		cfg.NEOFile = filepath.Join(dir, "neos.csv")
		cfg.CADFile = filepath.Join(dir, "cad.json")
	}
	if v := os.Getenv("NEO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

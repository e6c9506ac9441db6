// Package config resolves where watodo keeps its data and which storage
// backend it uses.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pablasso/watodo/internal/storage"
)

const (
	xdgAppName = "watodo"
	configFile = "config.yaml"
	envFile    = ".env"

	DefaultDataDir = ".watodo"

	EnvDataDir = "WATODO_DATA_DIR"
	EnvStorage = "WATODO_STORAGE"
)

// Config is the resolved configuration.
type Config struct {
	DataDir string          `yaml:"data_dir"`
	Storage storage.Backend `yaml:"storage"`
}

// GetConfigPath returns the config file location, honoring XDG_CONFIG_HOME.
func GetConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, xdgAppName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName, configFile), nil
}

// Load reads .env from the working directory, then the config file, then
// the WATODO_* environment variables. Later sources win. Missing files
// are not an error.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return load(path, envFile)
}

func load(path, dotenv string) (*Config, error) {
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotenv, err)
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage = storage.Backend(v)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	backend, err := storage.ParseBackend(string(cfg.Storage))
	if err != nil {
		return nil, err
	}
	cfg.Storage = backend
	return cfg, nil
}

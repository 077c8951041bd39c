package core

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Config stores per-user settings and node identity.
type Config struct {
	Version     int    `json:"version"`
	NodeID      string `json:"node_id"`
	DisplayName string `json:"display_name,omitempty"`
	DataDir     string `json:"data_dir,omitempty"`
	Theme       string `json:"theme,omitempty"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".config", "cyan")
	return filepath.Join(configDir, "cyan-config.json"), nil
}

func ensureConfigDir() (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// ReadConfig reads the config file if present. A missing file is not an
// error; the zero config is returned.
func ReadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// WriteConfig writes the config to disk.
func WriteConfig(config Config) error {
	path, err := ensureConfigDir()
	if err != nil {
		return err
	}
	if config.Version == 0 {
		config.Version = 1
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// LoadIdentity returns the config, generating and persisting a node id on
// first run.
func LoadIdentity() (Config, error) {
	config, err := ReadConfig()
	if err != nil {
		return Config{}, err
	}
	if config.NodeID != "" {
		return config, nil
	}

	config.NodeID = uuid.NewString()
	if config.DisplayName == "" {
		if host, err := os.Hostname(); err == nil {
			config.DisplayName = host
		}
	}
	if err := WriteConfig(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

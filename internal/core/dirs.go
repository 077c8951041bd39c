package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// DBFileName is the SQLite file inside a data directory.
const DBFileName = "cyan.db"

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "cyan"), nil
}

// ResolveDataDir picks the data directory: explicit override, then the
// CYAN_DIR environment variable, then the config file, then the default.
// The directory must already be initialized.
func ResolveDataDir(override string) (string, error) {
	dir, err := dataDirCandidate(override)
	if err != nil {
		return "", err
	}

	dbPath := filepath.Join(dir, DBFileName)
	if _, err := os.Stat(dbPath); err != nil {
		return "", fmt.Errorf("no cyan data at %s. Run 'cyan init' first", dir)
	}
	return dir, nil
}

// InitDataDir creates the data directory, removing any existing database
// when force is set. It returns the resolved directory path.
func InitDataDir(override string, force bool) (string, error) {
	dir, err := dataDirCandidate(override)
	if err != nil {
		return "", err
	}

	dbPath := filepath.Join(dir, DBFileName)
	if _, err := os.Stat(dbPath); err == nil && !force {
		return "", fmt.Errorf("already initialized at %s. Use --force to reinitialize", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	if force {
		for _, name := range []string{DBFileName, DBFileName + "-wal", DBFileName + "-shm"} {
			if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
				return "", err
			}
		}
	}

	return dir, nil
}

func dataDirCandidate(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if env := os.Getenv("CYAN_DIR"); env != "" {
		return filepath.Abs(env)
	}
	if config, err := ReadConfig(); err == nil && config.DataDir != "" {
		return filepath.Abs(config.DataDir)
	}
	return DefaultDataDir()
}

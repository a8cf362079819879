package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type linuxManager struct{}

func newLinuxManager() Manager {
	return &linuxManager{}
}

func (m *linuxManager) ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configHome, AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating settings directory: %w", err)
	}

	return dir, nil
}

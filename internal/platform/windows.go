package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type windowsManager struct{}

func newWindowsManager() Manager {
	return &windowsManager{}
}

func (m *windowsManager) ConfigDir() (string, error) {
	base := os.Getenv("APPDATA")
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		base = homeDir
	}

	dir := filepath.Join(base, AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating settings directory: %w", err)
	}

	return dir, nil
}

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type darwinManager struct{}

func newDarwinManager() Manager {
	return &darwinManager{}
}

func (m *darwinManager) ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, "Library", "Application Support", AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating settings directory: %w", err)
	}

	return dir, nil
}

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// fallbackManager covers platforms without a conventional config location
// (mobile targets, BSDs and the like) with a dotfile directory in the home.
type fallbackManager struct{}

func newFallbackManager() Manager {
	return &fallbackManager{}
}

func (m *fallbackManager) ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".whoascope")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating settings directory: %w", err)
	}

	return dir, nil
}

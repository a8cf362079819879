package platform

import (
	"runtime"
)

// AppDirName is the directory created for WhoaScope inside the per-OS
// configuration root.
const AppDirName = "WhoaScope"

// Manager handles platform-specific operations
type Manager interface {
	// ConfigDir returns the per-user settings directory for this platform,
	// creating it (and any parents) if it does not exist. The location is
	// recomputed on every call so environment changes are honored.
	ConfigDir() (string, error)
}

// New returns a platform-specific manager
func New() Manager {
	return ForOS(runtime.GOOS)
}

// ForOS returns the manager for the given GOOS value. Unrecognized values
// fall back to a dotfile directory in the user's home.
func ForOS(goos string) Manager {
	switch goos {
	case "windows":
		return newWindowsManager()
	case "darwin":
		return newDarwinManager()
	case "linux":
		return newLinuxManager()
	default:
		return newFallbackManager()
	}
}

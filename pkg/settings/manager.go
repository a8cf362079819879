// Package settings persists user preferences to a per-OS configuration
// directory with graceful fallback to defaults on missing or corrupt data.
package settings

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/whoascope/whoascope/internal/logging"
	"github.com/whoascope/whoascope/internal/platform"
	"github.com/whoascope/whoascope/pkg/fonts"
)

// Settings keys.
const (
	KeyFontName        = "font_name"
	KeyFontScale       = "font_scale"
	KeyLaunchMaximized = "launch_maximized"
)

const settingsFileName = "settings.json"

const defaultFontScale = 1.0

// DefaultSettings returns the default preference values, seeding font_name
// from the first catalog entry when one exists.
func DefaultSettings(catalog *fonts.Catalog) map[string]any {
	fontName := fonts.FallbackFontName
	if catalog != nil {
		if first, ok := catalog.First(); ok {
			fontName = first
		}
	}

	return map[string]any{
		KeyFontName:        fontName,
		KeyFontScale:       defaultFontScale,
		KeyLaunchMaximized: false,
	}
}

// Manager provides durable access to named preference values. It has a
// two-state lifecycle: constructed with defaults only, then Initialize opens
// the backing store and loads persisted values over them. A single instance
// should be created at startup and passed to whatever consumes it.
//
// Access is single-goroutine by design; the manager does no locking.
type Manager struct {
	platform platform.Manager
	defaults map[string]any
	values   map[string]any
	store    *JSONStore
}

// NewManager creates a manager for the current platform.
func NewManager(defaults map[string]any) *Manager {
	return NewManagerWithPlatform(platform.New(), defaults)
}

// NewManagerWithPlatform creates a manager with an explicit platform,
// which is how tests point it at a temp directory.
func NewManagerWithPlatform(p platform.Manager, defaults map[string]any) *Manager {
	defaultsCopy := make(map[string]any, len(defaults))
	values := make(map[string]any, len(defaults))
	for key, value := range defaults {
		defaultsCopy[key] = value
		values[key] = value
	}

	return &Manager{
		platform: p,
		defaults: defaultsCopy,
		values:   values,
	}
}

// Initialize opens the backing store at the resolved settings path and loads
// every default key from it, falling back to the default when a key is
// absent or its stored value unreadable. Call it once before first use;
// re-running re-reads storage and overwrites the in-memory values.
func (m *Manager) Initialize() error {
	dir, err := m.platform.ConfigDir()
	if err != nil {
		return fmt.Errorf("resolving settings directory: %w", err)
	}

	m.store = OpenJSONStore(filepath.Join(dir, settingsFileName))
	m.loadStored()
	return nil
}

func (m *Manager) loadStored() {
	for key, def := range m.defaults {
		raw, ok := m.store.Get(key)
		if !ok {
			m.values[key] = def
			continue
		}

		var value any
		if err := json.Unmarshal(raw, &value); err != nil || value == nil {
			logging.Debug().Str("key", key).Msg("stored value unreadable, using default")
			m.values[key] = def
			continue
		}
		m.values[key] = value
	}
}

// Get returns the current value for key, or the registered default when the
// key has no value, or nil for unknown keys. It never reads the backing
// store and never fails.
func (m *Manager) Get(key string) any {
	if value, ok := m.values[key]; ok {
		return value
	}
	return m.defaults[key]
}

// Lookup is Get with a caller-supplied fallback; the fallback takes
// precedence over the registered default when the key has no value.
func (m *Manager) Lookup(key string, fallback any) any {
	if value, ok := m.values[key]; ok {
		return value
	}
	if fallback != nil {
		return fallback
	}
	return m.defaults[key]
}

// Set updates the in-memory value and persists the single key to the
// backing store. Before Initialize the persistence step is silently
// skipped. A persistence failure propagates to the caller, but the
// in-memory update is not rolled back.
func (m *Manager) Set(key string, value any) error {
	m.values[key] = value

	if m.store == nil {
		return nil
	}
	if err := m.store.Put(key, value); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// FontName returns the preferred font display name.
func (m *Manager) FontName() string {
	name, _ := m.Get(KeyFontName).(string)
	return name
}

// SetFontName stores the preferred font display name.
func (m *Manager) SetFontName(name string) error {
	return m.Set(KeyFontName, name)
}

// FontScale returns the font size scale factor (1.0 means 100%).
func (m *Manager) FontScale() float64 {
	switch value := m.Get(KeyFontScale).(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return defaultFontScale
	}
}

// SetFontScale stores the font size scale factor.
func (m *Manager) SetFontScale(scale float64) error {
	return m.Set(KeyFontScale, scale)
}

// LaunchMaximized reports whether the application should start maximized.
func (m *Manager) LaunchMaximized() bool {
	maximized, _ := m.Get(KeyLaunchMaximized).(bool)
	return maximized
}

// SetLaunchMaximized stores the launch-maximized flag.
func (m *Manager) SetLaunchMaximized(maximized bool) error {
	return m.Set(KeyLaunchMaximized, maximized)
}

// SettingsDirectory returns the directory holding the settings file, for
// display and debugging.
func (m *Manager) SettingsDirectory() (string, error) {
	return m.platform.ConfigDir()
}

// Keys returns the recognized settings keys in sorted order.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(m.defaults))
	for key := range m.defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

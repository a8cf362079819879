package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/whoascope/whoascope/internal/logging"
)

// storedValue is the on-disk wrapper for a single entry. The document maps
// each key to {"value": <v>} rather than the bare value.
type storedValue struct {
	Value json.RawMessage `json:"value"`
}

// JSONStore is a small key/value document store backed by a single JSON
// file. The whole document is rewritten on every Put.
type JSONStore struct {
	path string
	data map[string]storedValue
}

// OpenJSONStore loads the document at path. A missing or unreadable file is
// not an error; the store starts from an empty document.
func OpenJSONStore(path string) *JSONStore {
	store := &JSONStore{
		path: path,
		data: make(map[string]storedValue),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug().Str("path", path).Err(err).Msg("settings file unreadable")
		}
		return store
	}

	if err := json.Unmarshal(raw, &store.data); err != nil {
		logging.Warn().Str("path", path).Err(err).Msg("settings file corrupt, starting fresh")
		store.data = make(map[string]storedValue)
	}
	if store.data == nil {
		store.data = make(map[string]storedValue)
	}

	return store
}

// Path returns the location of the backing file.
func (s *JSONStore) Path() string {
	return s.path
}

// Exists reports whether key is present in the document.
func (s *JSONStore) Exists(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Get returns the raw stored value for key. The second result is false when
// the key is absent or has no value field.
func (s *JSONStore) Get(key string) (json.RawMessage, bool) {
	entry, ok := s.data[key]
	if !ok || entry.Value == nil {
		return nil, false
	}
	return entry.Value, true
}

// Put stores value under key and writes the document to disk.
func (s *JSONStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	s.data[key] = storedValue{Value: raw}

	doc, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings document: %w", err)
	}
	if err := os.WriteFile(s.path, doc, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

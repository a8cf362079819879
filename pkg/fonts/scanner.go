package fonts

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/whoascope/whoascope/internal/logging"
)

// fontPatterns are matched in order; later matches overwrite earlier ones
// sharing a display name.
var fontPatterns = []string{"*.ttf", "*.otf", "*.TTF", "*.OTF"}

// noiseSubstrings are boilerplate fragments stripped from derived display
// names after separator normalization.
var noiseSubstrings = []string{"Regular", "VariableFont wdth,wght", "VariableFont"}

// LocateFontsDir looks for a fonts directory next to the working directory
// first, then next to the executable (the bundled-build case).
func LocateFontsDir() (string, bool) {
	if wd, err := os.Getwd(); err == nil {
		dir := filepath.Join(wd, "fonts")
		if isDir(dir) {
			return dir, true
		}
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "fonts")
		if isDir(dir) {
			return dir, true
		}
	}

	return "", false
}

// Scan builds the font catalog from the application's fonts directory.
// A missing directory is a normal case and yields an empty catalog.
func Scan() *Catalog {
	dir, ok := LocateFontsDir()
	if !ok {
		logging.Debug().Msg("no fonts directory found")
		return NewCatalog()
	}
	return ScanDir(dir)
}

// ScanDir builds a catalog from every font file in dir. An unreadable
// directory yields an empty catalog, never an error.
func ScanDir(dir string) *Catalog {
	catalog := NewCatalog()

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debug().Str("dir", dir).Err(err).Msg("fonts directory unreadable")
		return catalog
	}

	for _, pattern := range fontPatterns {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			matched, err := doublestar.Match(pattern, entry.Name())
			if err != nil || !matched {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}

			name := DisplayName(entry.Name())
			catalog.add(name, path)
			logging.Debug().Str("font", name).Str("path", path).Msg("discovered font")
		}
	}

	return catalog
}

// DisplayName derives a human-readable label from a font filename: the
// extension is dropped, dashes and underscores become spaces, and known
// boilerplate substrings are removed.
func DisplayName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	for _, noise := range noiseSubstrings {
		name = strings.TrimSpace(strings.ReplaceAll(name, noise, ""))
	}
	return name
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

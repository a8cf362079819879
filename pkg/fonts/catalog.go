// Package fonts discovers font files shipped alongside the application and
// derives human-readable display names for them.
package fonts

// FallbackFontName is used for the default font when no bundled fonts are
// found.
const FallbackFontName = "Roboto"

// Catalog maps font display names to font file paths. Names keep their scan
// order, so the first discovered font is stable; re-adding a name overwrites
// its path but keeps the original position.
type Catalog struct {
	names []string
	paths map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		paths: make(map[string]string),
	}
}

func (c *Catalog) add(name, path string) {
	if _, exists := c.paths[name]; !exists {
		c.names = append(c.names, name)
	}
	c.paths[name] = path
}

// Path returns the file path for a display name.
func (c *Catalog) Path(name string) (string, bool) {
	path, ok := c.paths[name]
	return path, ok
}

// Names returns all display names in scan order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// First returns the first discovered display name.
func (c *Catalog) First() (string, bool) {
	if len(c.names) == 0 {
		return "", false
	}
	return c.names[0], true
}

// Len returns the number of fonts in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

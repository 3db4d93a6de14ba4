package catalog

import "strings"

// Registry of grading schemes by key (e.g. "kcse"). Call RegisterScheme
// from init().
var schemes = map[string]*Catalog{}

// RegisterScheme binds a catalog to a scheme key.
func RegisterScheme(key string, c *Catalog) { schemes[strings.ToLower(key)] = c }

// Scheme returns a registered catalog.
func Scheme(key string) (*Catalog, bool) {
	c, ok := schemes[strings.ToLower(strings.TrimSpace(key))]
	return c, ok && c != nil
}

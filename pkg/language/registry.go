package language

import (
	"path/filepath"
	"strings"
)

// Registry maps display names and file extensions to language descriptors.
type Registry struct {
	byName map[string]*Language
	byExt  map[string]*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Language),
		byExt:  make(map[string]*Language),
	}
}

// Register adds lang under its display name and the given file extensions
// (without the leading dot). A later registration for the same name or
// extension wins.
func (r *Registry) Register(lang *Language, extensions ...string) {
	r.byName[lang.Name] = lang
	for _, ext := range extensions {
		r.byExt[ext] = lang
	}
}

// Get returns the language registered under the display name.
func (r *Registry) Get(name string) (*Language, bool) {
	lang, ok := r.byName[name]
	return lang, ok
}

// ForPath resolves a language from the path's file extension.
func (r *Registry) ForPath(path string) (*Language, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, false
	}
	lang, ok := r.byExt[ext]
	return lang, ok
}

// Names returns the display names of all registered languages.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

package lang

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
)

// Registry interns language definitions by name. Lookups ignore case, so
// "json", "JSON" and "Json" find the same definition.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]*Definition
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Builtin returns a registry holding every preset.
func Builtin() *Registry {
	r := NewRegistry()
	for _, def := range Presets() {
		_ = r.Register(def)
	}
	return r
}

func registryKey(name string) string {
	return cases.Fold().String(name)
}

// Register adds def, replacing any definition with the same name.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}
	key := registryKey(def.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[key]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.defs[key] = def
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[registryKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return def, nil
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// LoadFile loads a definition file and registers it.
func (r *Registry) LoadFile(path string) (*Definition, error) {
	def, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := r.Register(def); err != nil {
		return nil, err
	}
	return def, nil
}

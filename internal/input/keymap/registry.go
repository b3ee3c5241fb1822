package keymap

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dshills/keyforge/internal/input/fuzzy"
)

// Registry holds keymaps by name.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by lowercase name.
	keymaps map[string]*Keymap
}

// NewRegistry creates a registry preloaded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{
		keymaps: make(map[string]*Keymap),
	}
	for _, km := range Presets() {
		r.Register(km)
	}
	return r
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) {
	if km == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps[strings.ToLower(km.Name)] = km
}

// Get returns a keymap by name (case-insensitive).
func (r *Registry) Get(name string) (*Keymap, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	km, ok := r.keymaps[strings.ToLower(strings.TrimSpace(name))]
	return km, ok
}

// Lookup returns a keymap by name or an error naming the known keymaps.
func (r *Registry) Lookup(name string) (*Keymap, error) {
	if km, ok := r.Get(name); ok {
		return km, nil
	}
	names := r.Names()
	if hint := fuzzy.Hint(strings.ToLower(strings.TrimSpace(name)), names); hint != "" {
		return nil, fmt.Errorf("%w: no keymap named %q%s", ErrInvalidKeymap, name, hint)
	}
	return nil, fmt.Errorf("%w: no keymap named %q (known: %s)",
		ErrInvalidKeymap, name, strings.Join(names, ", "))
}

// Names returns the registered keymap names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every keymap sorted by name.
func (r *Registry) All() []*Keymap {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*Keymap, 0, len(names))
	for _, name := range names {
		if km, ok := r.keymaps[name]; ok {
			all = append(all, km)
		}
	}
	return all
}

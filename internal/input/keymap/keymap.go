package keymap

import (
	"errors"

	"github.com/dshills/keyforge/internal/layout"
)

// ErrInvalidKeymap is returned when a keymap file cannot be interpreted.
var ErrInvalidKeymap = errors.New("invalid keymap")

// Keymap is a named remap table.
type Keymap struct {
	// Name identifies the keymap, e.g. "colemak".
	Name string

	// Source describes where the keymap came from ("builtin" or a file path).
	Source string

	// Remaps is the table merged into a configuration.
	Remaps layout.Remaps
}

// NewKeymap creates an empty keymap.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:   name,
		Remaps: make(layout.Remaps),
	}
}

// WithSource sets the keymap source and returns the keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Len returns the number of remaps.
func (k *Keymap) Len() int {
	return len(k.Remaps)
}

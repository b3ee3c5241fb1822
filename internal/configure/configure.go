// Package configure provides the builder used to describe a keyboard layout.
//
// A Configure accumulates two tables: key remaps (source key to optional target)
// and macros (trigger shortcut to pending macro). Every mutator returns the
// builder so calls can be chained, and every insert overwrites an existing
// entry for the same key. Make finalizes the tables into an immutable
// layout.Layout; the builder remains usable afterwards.
//
//	l := configure.New().
//	    WithRemappings(keymap.Colemak()).
//	    Remap(key.Non(key.A), key.Non(key.LeftArrow)).
//	    DeadKey(key.Non(key.Backtick)).
//	    InvertNumbers().
//	    Make()
package configure

import (
	"maps"

	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/input/macro"
	"github.com/dshills/keyforge/internal/layout"
)

// Configure builds a keyboard layout. The zero value is not usable; call New.
type Configure struct {
	platform command.Platform
	remaps   layout.Remaps
	macros   map[key.Shortcut]macro.Pending
}

// New creates a builder for the PC platform with no remaps or macros.
func New() *Configure {
	return &Configure{
		platform: command.PC,
		remaps:   make(layout.Remaps),
		macros:   make(map[key.Shortcut]macro.Pending),
	}
}

// SetPlatform selects the platform commands resolve against in Make.
func (c *Configure) SetPlatform(p command.Platform) *Configure {
	c.platform = p
	return c
}

// Platform returns the selected platform.
func (c *Configure) Platform() command.Platform {
	return c.platform
}

// Remap maps one key to another in the normal layer.
func (c *Configure) Remap(from, to key.Key) *Configure {
	c.remaps[key.Off(from)] = layout.To(key.Off(to))
	return c
}

// RemapKeypad maps one key to another in the keypad layer.
func (c *Configure) RemapKeypad(from, to key.Key) *Configure {
	c.remaps[key.On(from)] = layout.To(key.On(to))
	return c
}

// RemapAll maps one key to another in both layers.
func (c *Configure) RemapAll(from, to key.Key) *Configure {
	return c.Remap(from, to).RemapKeypad(from, to)
}

// RemapLayers maps a key to another across arbitrary layers, e.g. a normal
// layer key to a keypad token. Prefer Remap, RemapKeypad and RemapAll when the
// layers match.
func (c *Configure) RemapLayers(from, to key.KeyLayer) *Configure {
	c.remaps[from] = layout.To(to)
	return c
}

// WithRemappings merges a whole remap table, such as an alternate base layout.
// Entries in remaps overwrite existing entries for the same source key.
func (c *Configure) WithRemappings(remaps layout.Remaps) *Configure {
	maps.Copy(c.remaps, remaps)
	return c
}

// DeadKey makes a key produce nothing in the normal layer.
func (c *Configure) DeadKey(k key.Key) *Configure {
	c.remaps[key.Off(k)] = layout.Dead()
	return c
}

// KeypadDeadKey makes a key produce nothing in the keypad layer.
func (c *Configure) KeypadDeadKey(k key.Key) *Configure {
	c.remaps[key.On(k)] = layout.Dead()
	return c
}

// RemoveRemap drops the normal layer remap for a key, if any. Useful to undo
// one entry of a table merged with WithRemappings.
func (c *Configure) RemoveRemap(k key.Key) *Configure {
	delete(c.remaps, key.Off(k))
	return c
}

// RemoveRemapKeypad drops the keypad layer remap for a key, if any.
func (c *Configure) RemoveRemapKeypad(k key.Key) *Configure {
	delete(c.remaps, key.On(k))
	return c
}

// WithMacro registers a macro on a trigger, replacing any macro already there.
func (c *Configure) WithMacro(trigger key.Shortcut, m macro.Pending) *Configure {
	c.macros[trigger] = m
	return c
}

// InvertKey swaps the shifted and unshifted output of a key in the normal
// layer: inverting 5 makes a bare press type % and shift+5 type 5.
func (c *Configure) InvertKey(k key.NonModifier) *Configure {
	return c.invert(key.LayerOff, k)
}

// InvertKeypadKey is InvertKey for the keypad layer.
func (c *Configure) InvertKeypadKey(k key.NonModifier) *Configure {
	return c.invert(key.LayerOn, k)
}

// InvertNumbers inverts every digit key (1-9 and 0) in the normal layer so
// symbols can be typed without shift.
func (c *Configure) InvertNumbers() *Configure {
	for _, k := range key.Digits() {
		c.InvertKey(k)
	}
	return c
}

func (c *Configure) invert(layer key.Layer, k key.NonModifier) *Configure {
	plain := key.Shortcut{Layer: layer, Modifiers: key.NoModifiers, Key: k}
	shifted := key.Shortcut{Layer: layer, Modifiers: key.Modifiers(key.RightShift), Key: k}

	c.macros[plain] = macro.NewBuilder().Shortcut(shifted).MustBuild()
	c.macros[shifted] = macro.NewBuilder().Shortcut(plain).MustBuild()
	return c
}

// RemapCount returns the number of remap entries.
func (c *Configure) RemapCount() int {
	return len(c.remaps)
}

// MacroCount returns the number of macro entries.
func (c *Configure) MacroCount() int {
	return len(c.macros)
}

// Make finalizes the configuration into an immutable layout, resolving every
// macro against the selected platform. The builder is left untouched and later
// changes to it do not affect the returned layout.
func (c *Configure) Make() *layout.Layout {
	resolved := make(map[key.Shortcut]macro.Macro, len(c.macros))
	for trigger, m := range c.macros {
		resolved[trigger] = m.Resolve(c.platform)
	}
	return layout.New(c.platform, c.remaps, resolved)
}

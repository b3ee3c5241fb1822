package layout

import (
	"maps"
	"slices"

	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/input/macro"
)

// NullToken is written for a remap target that produces nothing.
const NullToken = "null"

// Target is the optional destination of a remap. The zero value is a dead key.
type Target struct {
	key   key.KeyLayer
	valid bool
}

// To returns a target that sends kl.
func To(kl key.KeyLayer) Target {
	return Target{key: kl, valid: true}
}

// Dead returns a target that produces no output.
func Dead() Target {
	return Target{}
}

// KeyLayer returns the destination and true, or false for a dead key.
func (t Target) KeyLayer() (key.KeyLayer, bool) {
	return t.key, t.valid
}

// IsDead returns true if the target produces no output.
func (t Target) IsDead() bool {
	return !t.valid
}

// Token returns the destination token or NullToken.
func (t Target) Token() string {
	if !t.valid {
		return NullToken
	}
	return t.key.Token()
}

// Remaps maps source keys to their targets.
type Remaps map[key.KeyLayer]Target

// Clone returns an independent copy.
func (r Remaps) Clone() Remaps {
	if r == nil {
		return Remaps{}
	}
	return maps.Clone(r)
}

// SortedKeys returns the source keys in output order.
func (r Remaps) SortedKeys() []key.KeyLayer {
	return slices.SortedFunc(maps.Keys(r), key.KeyLayer.Compare)
}

// Layout is an immutable keyboard layout: remaps plus macros resolved for
// one platform.
type Layout struct {
	platform command.Platform
	remaps   Remaps
	macros   map[key.Shortcut]macro.Macro
}

// New creates a layout from remaps and macros resolved for platform.
// Both maps are copied.
func New(platform command.Platform, remaps Remaps, macros map[key.Shortcut]macro.Macro) *Layout {
	return &Layout{
		platform: platform,
		remaps:   remaps.Clone(),
		macros:   cloneMacros(macros),
	}
}

// Platform returns the platform the macros were resolved for.
func (l *Layout) Platform() command.Platform {
	return l.platform
}

// Remaps returns a copy of the remap table.
func (l *Layout) Remaps() Remaps {
	return l.remaps.Clone()
}

// Macros returns a copy of the macro table.
func (l *Layout) Macros() map[key.Shortcut]macro.Macro {
	return cloneMacros(l.macros)
}

// Remap returns the target for a source key.
func (l *Layout) Remap(kl key.KeyLayer) (Target, bool) {
	t, ok := l.remaps[kl]
	return t, ok
}

// Macro returns the macro registered on a trigger.
func (l *Layout) Macro(trigger key.Shortcut) (macro.Macro, bool) {
	m, ok := l.macros[trigger]
	return m, ok
}

// Triggers returns the macro triggers in output order.
func (l *Layout) Triggers() []key.Shortcut {
	return slices.SortedFunc(maps.Keys(l.macros), key.Shortcut.Compare)
}

// RemapCount returns the number of remaps.
func (l *Layout) RemapCount() int {
	return len(l.remaps)
}

// MacroCount returns the number of macros.
func (l *Layout) MacroCount() int {
	return len(l.macros)
}

// cloneMacros copies the table. Macro values have no mutators, so sharing
// them between tables is safe.
func cloneMacros(in map[key.Shortcut]macro.Macro) map[key.Shortcut]macro.Macro {
	if in == nil {
		return map[key.Shortcut]macro.Macro{}
	}
	return maps.Clone(in)
}

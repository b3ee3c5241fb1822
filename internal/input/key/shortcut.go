package key

import (
	"cmp"
	"strings"
)

// KeyPress is one literal keystroke, optionally with shift held.
type KeyPress struct {
	Shifted bool
	Key     NonModifier
}

// Press returns an unshifted keystroke.
func Press(k NonModifier) KeyPress {
	return KeyPress{Key: k}
}

// ShiftedPress returns a keystroke that requires shift.
func ShiftedPress(k NonModifier) KeyPress {
	return KeyPress{Shifted: true, Key: k}
}

// Shortcut is a chord: a set of held modifiers plus one base key, addressed
// under a layer. Shortcuts are comparable and serve as macro trigger identities.
type Shortcut struct {
	Layer     Layer
	Modifiers ModifierSet
	Key       NonModifier
}

// NewShortcut creates a shortcut in the normal layer.
func NewShortcut(mods ModifierSet, k NonModifier) Shortcut {
	return Shortcut{Layer: LayerOff, Modifiers: mods, Key: k}
}

// NewKeypadShortcut creates a shortcut in the keypad layer.
func NewKeypadShortcut(mods ModifierSet, k NonModifier) Shortcut {
	return Shortcut{Layer: LayerOn, Modifiers: mods, Key: k}
}

// Compare orders by layer, then modifier set, then base key.
func (s Shortcut) Compare(other Shortcut) int {
	if c := cmp.Compare(s.Layer, other.Layer); c != 0 {
		return c
	}
	if c := s.Modifiers.Compare(other.Modifiers); c != 0 {
		return c
	}
	return cmp.Compare(s.Key, other.Key)
}

// BaseKeyLayer returns the base key addressed under the shortcut's layer.
func (s Shortcut) BaseKeyLayer() KeyLayer {
	return KeyLayer{Layer: s.Layer, Key: Non(s.Key)}
}

// TriggerToken renders the shortcut as a macro trigger: one bracketed token per
// modifier in sort order, then the bracketed base key, all under the layer,
// e.g. "{rshift}{lalt}{t}".
func (s Shortcut) TriggerToken() string {
	var b strings.Builder
	for _, m := range s.Modifiers.Slice() {
		b.WriteString("{")
		b.WriteString(KeyLayer{Layer: s.Layer, Key: Mod(m)}.Token())
		b.WriteString("}")
	}
	b.WriteString("{")
	b.WriteString(s.BaseKeyLayer().Token())
	b.WriteString("}")
	return b.String()
}

// String returns a human-readable form like "rshift+lalt+t" or "kp:space".
func (s Shortcut) String() string {
	var b strings.Builder
	if s.Layer == LayerOn {
		b.WriteString(keypadPrefix)
	}
	if !s.Modifiers.IsEmpty() {
		b.WriteString(s.Modifiers.String())
		b.WriteString("+")
	}
	b.WriteString(s.Key.String())
	return b.String()
}

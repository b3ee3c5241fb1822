package key

import (
	"cmp"
	"strings"
)

// Modifier represents one of the keyboard's modifier keys.
// The declaration order is the sort order used everywhere in output.
type Modifier uint8

const (
	// LeftShift is the left Shift key.
	LeftShift Modifier = iota
	// RightShift is the right Shift key.
	RightShift
	// LeftWindowsCommand is the left Windows key (Command on macOS).
	LeftWindowsCommand
	// RightWindowsCommand is the right Windows key (Command on macOS).
	RightWindowsCommand
	// LeftControl is the left Control key.
	LeftControl
	// RightControl is the right Control key.
	RightControl
	// LeftAlt is the left Alt key (Option on macOS).
	LeftAlt
	// RightAlt is the right Alt key (Option on macOS).
	RightAlt

	modifierCount
)

var modifierTokens = [modifierCount]string{
	LeftShift:           "lshift",
	RightShift:          "rshift",
	LeftWindowsCommand:  "lwin",
	RightWindowsCommand: "rwin",
	LeftControl:         "lctrl",
	RightControl:        "rctrl",
	LeftAlt:             "lalt",
	RightAlt:            "ralt",
}

// String returns the canonical token, e.g. "lshift".
func (m Modifier) String() string {
	if m >= modifierCount {
		return "invalid"
	}
	return modifierTokens[m]
}

// Valid returns true if m is one of the eight modifier keys.
func (m Modifier) Valid() bool {
	return m < modifierCount
}

// AllModifiers returns every modifier in sort order.
func AllModifiers() []Modifier {
	mods := make([]Modifier, 0, modifierCount)
	for m := Modifier(0); m < modifierCount; m++ {
		mods = append(mods, m)
	}
	return mods
}

// ModifierSet is a set of modifiers without duplicates.
// Iteration always follows the modifier sort order.
type ModifierSet uint8

// NoModifiers is the empty set.
const NoModifiers ModifierSet = 0

// Modifiers builds a set from the given modifiers. Duplicates collapse.
func Modifiers(mods ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s = s.With(m)
	}
	return s
}

// Has returns true if s contains m.
func (s ModifierSet) Has(m Modifier) bool {
	return m.Valid() && s&(1<<m) != 0
}

// With returns a new set with m added.
func (s ModifierSet) With(m Modifier) ModifierSet {
	if !m.Valid() {
		return s
	}
	return s | 1<<m
}

// Without returns a new set with m removed.
func (s ModifierSet) Without(m Modifier) ModifierSet {
	if !m.Valid() {
		return s
	}
	return s &^ (1 << m)
}

// IsEmpty returns true if no modifiers are set.
func (s ModifierSet) IsEmpty() bool {
	return s == NoModifiers
}

// Len returns the number of modifiers in the set.
func (s ModifierSet) Len() int {
	n := 0
	for m := Modifier(0); m < modifierCount; m++ {
		if s.Has(m) {
			n++
		}
	}
	return n
}

// Slice returns the members of the set in sort order.
func (s ModifierSet) Slice() []Modifier {
	mods := make([]Modifier, 0, s.Len())
	for m := Modifier(0); m < modifierCount; m++ {
		if s.Has(m) {
			mods = append(mods, m)
		}
	}
	return mods
}

// Compare orders sets lexicographically over their sorted members, so a set
// that is a prefix of another sorts first: {} < {lshift} < {lshift,rshift} < {rshift}.
func (s ModifierSet) Compare(other ModifierSet) int {
	a, b := s.Slice(), other.Slice()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return cmp.Compare(a[i], b[i])
		}
	}
	return cmp.Compare(len(a), len(b))
}

// String returns a human-readable form like "rshift+lalt".
func (s ModifierSet) String() string {
	mods := s.Slice()
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = m.String()
	}
	return strings.Join(parts, "+")
}

package key

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/keyforge/internal/input/fuzzy"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrUnknownKey  = errors.New("unknown key")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// keypadPrefix marks a name as addressed in the keypad layer, e.g. "kp:enter".
const keypadPrefix = "kp:"

// nonModifierAliases maps alternative spellings (lowercase) to base keys.
// Canonical tokens are added in init.
var nonModifierAliases = map[string]NonModifier{
	"one":          One,
	"two":          Two,
	"three":        Three,
	"four":         Four,
	"five":         Five,
	"six":          Six,
	"seven":        Seven,
	"eight":        Eight,
	"nine":         Nine,
	"zero":         Zero,
	"backtick":     Backtick,
	"grave":        Backtick,
	"-":            Hyphen,
	"minus":        Hyphen,
	"equals":       Equals,
	"backslash":    BackSlash,
	"semicolon":    SemiColon,
	"quote":        Quote,
	"comma":        Comma,
	"fullstop":     FullStop,
	"period":       FullStop,
	"slash":        ForwardSlash,
	"forwardslash": ForwardSlash,
	"[":            OpenBracket,
	"openbracket":  OpenBracket,
	"]":            CloseBracket,
	"closebracket": CloseBracket,
	"return":       Enter,
	"cr":           Enter,
	"pageup":       PageUp,
	"pgup":         PageUp,
	"pagedown":     PageDown,
	"pgdn":         PageDown,
	"leftarrow":    LeftArrow,
	"rightarrow":   RightArrow,
	"uparrow":      UpArrow,
	"downarrow":    DownArrow,
	"del":          Delete,
	"backspace":    Backspace,
	"bs":           Backspace,
	"ins":          Insert,
}

// modifierAliases maps alternative spellings (lowercase) to modifiers.
// Unsided names resolve to the left-hand key.
var modifierAliases = map[string]Modifier{
	"shift":      LeftShift,
	"leftshift":  LeftShift,
	"rightshift": RightShift,
	"win":        LeftWindowsCommand,
	"cmd":        LeftWindowsCommand,
	"command":    LeftWindowsCommand,
	"lcmd":       LeftWindowsCommand,
	"rcmd":       RightWindowsCommand,
	"ctrl":       LeftControl,
	"control":    LeftControl,
	"alt":        LeftAlt,
	"option":     LeftAlt,
	"opt":        LeftAlt,
	"lopt":       LeftAlt,
	"ropt":       RightAlt,
}

func init() {
	for _, k := range AllNonModifiers() {
		nonModifierAliases[k.String()] = k
	}
	for _, m := range AllModifiers() {
		modifierAliases[m.String()] = m
	}
}

// ParseNonModifier returns the base key for a name (case-insensitive).
func ParseNonModifier(name string) (NonModifier, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, ErrEmptySpec
	}
	if k, ok := nonModifierAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q%s", ErrUnknownKey, name, fuzzy.Hint(name, aliasNames(nonModifierAliases)))
}

// ParseModifier returns the modifier for a name (case-insensitive).
func ParseModifier(name string) (Modifier, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, ErrEmptySpec
	}
	if m, ok := modifierAliases[name]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: modifier %q%s", ErrUnknownKey, name, fuzzy.Hint(name, aliasNames(modifierAliases)))
}

// aliasNames returns the keys of an alias table in sorted order.
func aliasNames[V any](aliases map[string]V) []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseKey returns the Key for a name, trying base keys before modifiers.
func ParseKey(name string) (Key, error) {
	if k, err := ParseNonModifier(name); err == nil {
		return Non(k), nil
	} else if errors.Is(err, ErrEmptySpec) {
		return Key{}, err
	}
	m, err := ParseModifier(name)
	if err != nil {
		norm := strings.ToLower(strings.TrimSpace(name))
		names := append(aliasNames(nonModifierAliases), aliasNames(modifierAliases)...)
		return Key{}, fmt.Errorf("%w: %q%s", ErrUnknownKey, strings.TrimSpace(name), fuzzy.Hint(norm, names))
	}
	return Mod(m), nil
}

// ParseKeyLayer parses a key name with an optional "kp:" prefix selecting the
// keypad layer, e.g. "a" or "kp:enter".
func ParseKeyLayer(spec string) (KeyLayer, error) {
	layer, name := splitLayer(spec)
	k, err := ParseKey(name)
	if err != nil {
		return KeyLayer{}, err
	}
	return KeyLayer{Layer: layer, Key: k}, nil
}

// ParseShortcut parses a chord such as "rshift+lalt+t", "lwin+right" or
// "kp:lctrl+space". The last part is the base key; all others are modifiers.
func ParseShortcut(spec string) (Shortcut, error) {
	layer, body := splitLayer(spec)
	if body == "" {
		return Shortcut{}, ErrEmptySpec
	}

	parts := strings.Split(body, "+")
	keyPart := parts[len(parts)-1]
	if strings.TrimSpace(keyPart) == "" {
		return Shortcut{}, fmt.Errorf("%w: missing base key in %q", ErrInvalidSpec, spec)
	}

	var mods ModifierSet
	for _, p := range parts[:len(parts)-1] {
		m, err := ParseModifier(p)
		if err != nil {
			return Shortcut{}, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		mods = mods.With(m)
	}

	k, err := ParseNonModifier(keyPart)
	if err != nil {
		return Shortcut{}, err
	}
	return Shortcut{Layer: layer, Modifiers: mods, Key: k}, nil
}

// splitLayer strips an optional keypad prefix.
func splitLayer(spec string) (Layer, string) {
	spec = strings.TrimSpace(spec)
	if len(spec) > len(keypadPrefix) && strings.EqualFold(spec[:len(keypadPrefix)], keypadPrefix) {
		return LayerOn, strings.TrimSpace(spec[len(keypadPrefix):])
	}
	return LayerOff, spec
}

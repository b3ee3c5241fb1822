package keymap

import (
	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/layout"
)

// SourceBuiltin is the Source of keymaps shipped with keyforge.
const SourceBuiltin = "builtin"

// Colemak returns the remaps that turn the QWERTY letter block into Colemak.
func Colemak() layout.Remaps {
	return offLayerRemaps(map[key.NonModifier]key.NonModifier{
		key.T:         key.G,
		key.R:         key.P,
		key.E:         key.F,
		key.G:         key.D,
		key.F:         key.T,
		key.D:         key.S,
		key.S:         key.R,
		key.Y:         key.J,
		key.U:         key.L,
		key.I:         key.U,
		key.O:         key.Y,
		key.P:         key.SemiColon,
		key.J:         key.N,
		key.K:         key.E,
		key.L:         key.I,
		key.SemiColon: key.O,
		key.N:         key.K,
	})
}

// Dvorak returns the remaps that turn the QWERTY main block into Dvorak.
func Dvorak() layout.Remaps {
	return offLayerRemaps(map[key.NonModifier]key.NonModifier{
		key.Hyphen:       key.OpenBracket,
		key.Equals:       key.CloseBracket,
		key.Q:            key.Quote,
		key.W:            key.Comma,
		key.E:            key.FullStop,
		key.R:            key.P,
		key.T:            key.Y,
		key.Y:            key.F,
		key.U:            key.G,
		key.I:            key.C,
		key.O:            key.R,
		key.P:            key.L,
		key.OpenBracket:  key.ForwardSlash,
		key.CloseBracket: key.Equals,
		key.S:            key.O,
		key.D:            key.E,
		key.F:            key.U,
		key.G:            key.I,
		key.H:            key.D,
		key.J:            key.H,
		key.K:            key.T,
		key.L:            key.N,
		key.SemiColon:    key.S,
		key.Quote:        key.Hyphen,
		key.Z:            key.SemiColon,
		key.X:            key.Q,
		key.C:            key.J,
		key.V:            key.K,
		key.B:            key.X,
		key.N:            key.B,
		key.Comma:        key.W,
		key.FullStop:     key.V,
		key.ForwardSlash: key.Z,
	})
}

// Presets returns the built-in keymaps.
func Presets() []*Keymap {
	return []*Keymap{
		{Name: "colemak", Source: SourceBuiltin, Remaps: Colemak()},
		{Name: "dvorak", Source: SourceBuiltin, Remaps: Dvorak()},
	}
}

func offLayerRemaps(pairs map[key.NonModifier]key.NonModifier) layout.Remaps {
	remaps := make(layout.Remaps, len(pairs))
	for from, to := range pairs {
		remaps[key.Off(key.Non(from))] = layout.To(key.Off(key.Non(to)))
	}
	return remaps
}

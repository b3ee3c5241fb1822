package key

import (
	"cmp"
	"fmt"
)

// NonModifier represents a base key: anything that is not a modifier.
// The declaration order is the sort order used everywhere in output.
type NonModifier uint8

const (
	// Function keys
	F1 NonModifier = iota
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Number row
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Zero
	Backtick
	Hyphen
	Equals

	// Letters
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Punctuation
	BackSlash
	SemiColon
	Quote
	Comma
	FullStop
	ForwardSlash
	OpenBracket
	CloseBracket

	// Thumb clusters and navigation
	Enter
	PageUp
	Tab
	PageDown
	Space
	LeftArrow
	Delete
	RightArrow
	Backspace
	UpArrow
	Insert
	DownArrow
	Home
	End

	nonModifierCount
)

var nonModifierTokens = [nonModifierCount]string{
	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6",
	F7: "f7", F8: "f8", F9: "f9", F10: "f10", F11: "f11", F12: "f12",

	One: "1", Two: "2", Three: "3", Four: "4", Five: "5",
	Six: "6", Seven: "7", Eight: "8", Nine: "9", Zero: "0",
	Backtick: "`", Hyphen: "hyphen", Equals: "=",

	A: "a", B: "b", C: "c", D: "d", E: "e", F: "f", G: "g", H: "h", I: "i",
	J: "j", K: "k", L: "l", M: "m", N: "n", O: "o", P: "p", Q: "q", R: "r",
	S: "s", T: "t", U: "u", V: "v", W: "w", X: "x", Y: "y", Z: "z",

	BackSlash:    `\`,
	SemiColon:    ";",
	Quote:        "'",
	Comma:        ",",
	FullStop:     ".",
	ForwardSlash: "/",
	OpenBracket:  "obrack",
	CloseBracket: "cbrack",

	Enter:      "enter",
	PageUp:     "pup",
	Tab:        "tab",
	PageDown:   "pdown",
	Space:      "space",
	LeftArrow:  "left",
	Delete:     "delete",
	RightArrow: "right",
	Backspace:  "bspace",
	UpArrow:    "up",
	Insert:     "insert",
	DownArrow:  "down",
	Home:       "home",
	End:        "end",
}

// String returns the canonical token with the keypad layer off, e.g. "a",
// "hyphen" or "pup".
func (k NonModifier) String() string {
	if k >= nonModifierCount {
		return fmt.Sprintf("NonModifier(%d)", k)
	}
	return nonModifierTokens[k]
}

// Valid returns true if k is a known base key.
func (k NonModifier) Valid() bool {
	return k < nonModifierCount
}

// IsDigit returns true for the number-row digits 0-9.
func (k NonModifier) IsDigit() bool {
	return k >= One && k <= Zero
}

// IsLetter returns true for A-Z.
func (k NonModifier) IsLetter() bool {
	return k >= A && k <= Z
}

// IsFunctionKey returns true for F1-F12.
func (k NonModifier) IsFunctionKey() bool {
	return k >= F1 && k <= F12
}

// IsArrowKey returns true for the four arrow keys.
func (k NonModifier) IsArrowKey() bool {
	switch k {
	case LeftArrow, RightArrow, UpArrow, DownArrow:
		return true
	}
	return false
}

// AllNonModifiers returns every base key in sort order.
func AllNonModifiers() []NonModifier {
	keys := make([]NonModifier, 0, nonModifierCount)
	for k := NonModifier(0); k < nonModifierCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Digits returns the number-row digit keys 1-9 followed by 0.
func Digits() []NonModifier {
	return []NonModifier{One, Two, Three, Four, Five, Six, Seven, Eight, Nine, Zero}
}

// Key is either a Modifier or a NonModifier.
// The zero value is the non-modifier F1.
type Key struct {
	modifier    Modifier
	nonModifier NonModifier
	isModifier  bool
}

// Mod wraps a modifier as a Key.
func Mod(m Modifier) Key {
	return Key{modifier: m, isModifier: true}
}

// Non wraps a base key as a Key.
func Non(k NonModifier) Key {
	return Key{nonModifier: k}
}

// IsModifier returns true if the key is a modifier.
func (k Key) IsModifier() bool {
	return k.isModifier
}

// Modifier returns the modifier and true, or false for a base key.
func (k Key) Modifier() (Modifier, bool) {
	return k.modifier, k.isModifier
}

// NonModifier returns the base key and true, or false for a modifier.
func (k Key) NonModifier() (NonModifier, bool) {
	return k.nonModifier, !k.isModifier
}

// String returns the canonical token with the keypad layer off.
func (k Key) String() string {
	if k.isModifier {
		return k.modifier.String()
	}
	return k.nonModifier.String()
}

// Compare orders modifiers before base keys, each in declaration order.
func (k Key) Compare(other Key) int {
	if k.isModifier != other.isModifier {
		if k.isModifier {
			return -1
		}
		return 1
	}
	if k.isModifier {
		return cmp.Compare(k.modifier, other.modifier)
	}
	return cmp.Compare(k.nonModifier, other.nonModifier)
}

// Layer selects whether the keypad addressing mode is active.
type Layer uint8

const (
	// LayerOff is the normal (top) layer.
	LayerOff Layer = iota
	// LayerOn is the keypad layer.
	LayerOn
)

// String returns "off" or "on".
func (l Layer) String() string {
	if l == LayerOn {
		return "on"
	}
	return "off"
}

// keypadTokens holds the keys that form the numeric pad embedded in the
// right-hand key well. They alias to fixed tokens when the keypad is on.
var keypadTokens = map[NonModifier]string{
	Space:        "kp0",
	M:            "kp1",
	Comma:        "kp2",
	FullStop:     "kp3",
	J:            "kp4",
	K:            "kp5",
	L:            "kp6",
	U:            "kp7",
	I:            "kp8",
	O:            "kp9",
	Seven:        "numlk",
	CloseBracket: "k.",
	Eight:        "k=",
	Nine:         "kpdiv",
	SemiColon:    "kpplus",
	Zero:         "kpmult",
	P:            "kpmin",
	ForwardSlash: "kpenter1",
}

// KeyLayer is a Key addressed under a Layer. Two KeyLayers with the same Key
// but different layers are distinct physical identities.
type KeyLayer struct {
	Layer Layer
	Key   Key
}

// Off addresses k in the normal layer.
func Off(k Key) KeyLayer {
	return KeyLayer{Layer: LayerOff, Key: k}
}

// On addresses k in the keypad layer.
func On(k Key) KeyLayer {
	return KeyLayer{Layer: LayerOn, Key: k}
}

// Token returns the importer's token for the key under its layer.
func (kl KeyLayer) Token() string {
	if kl.Layer == LayerOff {
		return kl.Key.String()
	}
	if nm, ok := kl.Key.NonModifier(); ok {
		if tok, ok := keypadTokens[nm]; ok {
			return tok
		}
	}
	return "kp-" + kl.Key.String()
}

// String returns the same value as Token.
func (kl KeyLayer) String() string {
	return kl.Token()
}

// Compare orders by layer first, then by key.
func (kl KeyLayer) Compare(other KeyLayer) int {
	if c := cmp.Compare(kl.Layer, other.Layer); c != 0 {
		return c
	}
	return kl.Key.Compare(other.Key)
}

package macro

import (
	"errors"
	"fmt"

	"github.com/dshills/keyforge/internal/input/key"
)

// ErrUnsupportedChar is returned when literal text contains a character that
// cannot be typed on the keyboard.
var ErrUnsupportedChar = errors.New("unsupported character")

// charKeys maps each typeable character to its key and shift state.
var charKeys = map[rune]key.KeyPress{
	'\t': key.Press(key.Tab),
	'\n': key.Press(key.Enter),
	' ':  key.Press(key.Space),
}

func init() {
	pairs := []struct {
		plain, shifted rune
		key            key.NonModifier
	}{
		{'1', '!', key.One},
		{'2', '@', key.Two},
		{'3', '#', key.Three},
		{'4', '$', key.Four},
		{'5', '%', key.Five},
		{'6', '^', key.Six},
		{'7', '&', key.Seven},
		{'8', '*', key.Eight},
		{'9', '(', key.Nine},
		{'0', ')', key.Zero},
		{'`', '~', key.Backtick},
		{'-', '_', key.Hyphen},
		{'=', '+', key.Equals},
		{'\\', '|', key.BackSlash},
		{';', ':', key.SemiColon},
		{'\'', '"', key.Quote},
		{',', '<', key.Comma},
		{'.', '>', key.FullStop},
		{'/', '?', key.ForwardSlash},
		{'[', '{', key.OpenBracket},
		{']', '}', key.CloseBracket},
	}
	for _, p := range pairs {
		charKeys[p.plain] = key.Press(p.key)
		charKeys[p.shifted] = key.ShiftedPress(p.key)
	}

	for i, k := 0, key.A; k <= key.Z; i, k = i+1, k+1 {
		charKeys[rune('a'+i)] = key.Press(k)
		charKeys[rune('A'+i)] = key.ShiftedPress(k)
	}
}

// CharToKeyPress returns the keystroke that types r.
func CharToKeyPress(r rune) (key.KeyPress, error) {
	if kp, ok := charKeys[r]; ok {
		return kp, nil
	}
	return key.KeyPress{}, fmt.Errorf("%w: %q", ErrUnsupportedChar, r)
}

// TextToKeyPresses converts text into keystrokes, failing on the first
// character outside the table.
func TextToKeyPresses(s string) ([]key.KeyPress, error) {
	presses := make([]key.KeyPress, 0, len(s))
	for i, r := range s {
		kp, err := CharToKeyPress(r)
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d", err, i)
		}
		presses = append(presses, kp)
	}
	return presses, nil
}

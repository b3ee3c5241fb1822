package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/input/macro"
)

// ErrInvalidFragment is returned for a macro fragment that cannot be read.
var ErrInvalidFragment = errors.New("invalid macro fragment")

// cursorMoves maps fragment fields to the builder's cursor methods.
var cursorMoves = map[string]func(*macro.Builder, int) *macro.Builder{
	"left":  (*macro.Builder).Left,
	"right": (*macro.Builder).Right,
	"up":    (*macro.Builder).Up,
	"down":  (*macro.Builder).Down,
}

// buildMacro reads a macro body. A string is typed as text. A table is a list
// whose entries are either strings (text) or tables with exactly one of the
// fields text, left, right, up, down, chord or command.
func buildMacro(body lua.LValue) (macro.Pending, error) {
	b := macro.NewBuilder()

	switch v := body.(type) {
	case lua.LString:
		b.Text(string(v))
	case *lua.LTable:
		for i := 1; i <= v.Len(); i++ {
			if err := addFragment(b, v.RawGetInt(i)); err != nil {
				return macro.Pending{}, fmt.Errorf("fragment %d: %w", i, err)
			}
		}
	default:
		return macro.Pending{}, fmt.Errorf("%w: body must be a string or table, got %s", ErrInvalidFragment, body.Type())
	}

	return b.Build()
}

// MaxCursorMove bounds a single left/right/up/down fragment.
const MaxCursorMove = 1000

func addFragment(b *macro.Builder, v lua.LValue) error {
	switch v := v.(type) {
	case lua.LString:
		b.Text(string(v))
		return nil
	case *lua.LTable:
		return addTableFragment(b, v)
	}
	return fmt.Errorf("%w: expected string or table, got %s", ErrInvalidFragment, v.Type())
}

func addTableFragment(b *macro.Builder, t *lua.LTable) error {
	var field string
	var value lua.LValue
	count := 0
	t.ForEach(func(k, v lua.LValue) {
		count++
		field = lua.LVAsString(k)
		value = v
	})
	if count != 1 {
		return fmt.Errorf("%w: want exactly one field, got %d", ErrInvalidFragment, count)
	}

	if move, ok := cursorMoves[field]; ok {
		n, ok := value.(lua.LNumber)
		if !ok || n < 0 || n > MaxCursorMove || float64(n) != float64(int(n)) {
			return fmt.Errorf("%w: %s needs an integer from 0 to %d", ErrInvalidFragment, field, MaxCursorMove)
		}
		move(b, int(n))
		return nil
	}

	s, ok := value.(lua.LString)
	if !ok {
		return fmt.Errorf("%w: %s needs a string", ErrInvalidFragment, field)
	}

	switch field {
	case "text":
		b.Text(string(s))
	case "chord":
		sc, err := key.ParseShortcut(string(s))
		if err != nil {
			return err
		}
		b.Shortcut(sc)
	case "command":
		c, err := command.ParseCommand(string(s))
		if err != nil {
			return err
		}
		b.Command(c)
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidFragment, field)
	}
	return nil
}

// Package command resolves platform-agnostic editing commands to the concrete
// chords each host platform expects.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keyforge/internal/input/fuzzy"
	"github.com/dshills/keyforge/internal/input/key"
)

// ErrUnknownCommand is returned when a command or platform name is not recognized.
var ErrUnknownCommand = errors.New("unknown command")

// Command is an editing action whose chord depends on the host platform.
type Command uint8

const (
	Copy Command = iota
	Paste
	Cut
	Undo
	JumpForward
	JumpBack
	LineEnd
	LineStart

	commandCount
)

var commandNames = [commandCount]string{
	Copy:        "copy",
	Paste:       "paste",
	Cut:         "cut",
	Undo:        "undo",
	JumpForward: "jump_forward",
	JumpBack:    "jump_back",
	LineEnd:     "line_end",
	LineStart:   "line_start",
}

// String returns the command name, e.g. "line_end".
func (c Command) String() string {
	if c >= commandCount {
		return fmt.Sprintf("Command(%d)", c)
	}
	return commandNames[c]
}

// All returns every command.
func All() []Command {
	cmds := make([]Command, 0, commandCount)
	for c := Command(0); c < commandCount; c++ {
		cmds = append(cmds, c)
	}
	return cmds
}

// ParseCommand returns the command for a name. Hyphens and underscores are
// interchangeable: "line-end" and "line_end" both name LineEnd.
func ParseCommand(name string) (Command, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for c := Command(0); c < commandCount; c++ {
		if commandNames[c] == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q%s", ErrUnknownCommand, name, fuzzy.Hint(norm, commandNames[:]))
}

// Platform is the host the keyboard is plugged into.
type Platform uint8

const (
	// PC covers Windows and Linux hosts. It is the default.
	PC Platform = iota
	// Mac is a macOS host.
	Mac
)

// String returns "pc" or "mac".
func (p Platform) String() string {
	if p == Mac {
		return "mac"
	}
	return "pc"
}

// ParsePlatform returns the platform for a name (case-insensitive).
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pc", "windows", "win", "linux":
		return PC, nil
	case "mac", "macos", "osx", "darwin":
		return Mac, nil
	default:
		return PC, fmt.Errorf("%w: platform %q", ErrUnknownCommand, name)
	}
}

func chord(k key.NonModifier, mods ...key.Modifier) key.Shortcut {
	return key.NewShortcut(key.Modifiers(mods...), k)
}

// pcChords and macChords are indexed by Command.
//
// TODO: JumpBack on PC reuses the copy chord and LineEnd on Mac is cmd+left;
// both are kept as published until the keyboard owners confirm the intended
// chords (ctrl+left and cmd+right respectively).
var (
	pcChords = [commandCount]key.Shortcut{
		Copy:        chord(key.C, key.LeftControl),
		Paste:       chord(key.V, key.LeftControl),
		Cut:         chord(key.X, key.LeftControl),
		Undo:        chord(key.Z, key.LeftControl),
		JumpForward: chord(key.RightArrow, key.LeftControl),
		JumpBack:    chord(key.C, key.LeftControl),
		LineEnd:     chord(key.End),
		LineStart:   chord(key.Home),
	}

	macChords = [commandCount]key.Shortcut{
		Copy:        chord(key.C, key.LeftWindowsCommand),
		Paste:       chord(key.V, key.LeftWindowsCommand),
		Cut:         chord(key.X, key.LeftWindowsCommand),
		Undo:        chord(key.Z, key.LeftWindowsCommand),
		JumpForward: chord(key.RightArrow, key.LeftAlt),
		JumpBack:    chord(key.LeftArrow, key.LeftAlt),
		LineEnd:     chord(key.LeftArrow, key.LeftWindowsCommand),
		LineStart:   chord(key.RightArrow, key.LeftWindowsCommand),
	}
)

// Resolve returns the chord that performs c on platform p.
// An out-of-range command resolves as Copy; every declared command has an entry.
func Resolve(c Command, p Platform) key.Shortcut {
	if c >= commandCount {
		c = Copy
	}
	if p == Mac {
		return macChords[c]
	}
	return pcChords[c]
}

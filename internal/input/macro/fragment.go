package macro

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
)

// Fragment is one step of a pending macro. It is implemented by Keys, Chord
// and Cmd only.
type Fragment interface {
	fragment()
}

// Output is one step of a resolved macro. It is implemented by Keys and Chord
// only, so a resolved macro cannot hold a command.
type Output interface {
	Fragment
	render(b *strings.Builder)
}

// Keys is a run of literal keystrokes.
type Keys []key.KeyPress

// Chord is a concrete shortcut pressed as one chord.
type Chord struct {
	Shortcut key.Shortcut
}

// Cmd is a platform-agnostic command awaiting resolution.
type Cmd struct {
	Command command.Command
}

func (Keys) fragment()  {}
func (Chord) fragment() {}
func (Cmd) fragment()   {}

var (
	shiftPress   = "{-" + key.LeftShift.String() + "}"
	shiftRelease = "{+" + key.LeftShift.String() + "}"
)

// render writes each key, toggling shift only when the shift state changes.
func (k Keys) render(b *strings.Builder) {
	shifted := false
	for _, kp := range k {
		if !shifted && kp.Shifted {
			shifted = true
			b.WriteString(shiftPress)
		}
		if shifted && !kp.Shifted {
			shifted = false
			b.WriteString(shiftRelease)
		}
		b.WriteString("{")
		b.WriteString(kp.Key.String())
		b.WriteString("}")
	}
	if shifted {
		b.WriteString(shiftRelease)
	}
}

// render nests the modifier presses around the base key: each modifier in
// sort order is pressed before everything already written and released after.
func (c Chord) render(b *strings.Builder) {
	mods := c.Shortcut.Modifiers.Slice()
	for i := len(mods) - 1; i >= 0; i-- {
		b.WriteString("{-")
		b.WriteString(mods[i].String())
		b.WriteString("}")
	}
	b.WriteString("{")
	b.WriteString(c.Shortcut.BaseKeyLayer().Token())
	b.WriteString("}")
	for _, m := range mods {
		b.WriteString("{+")
		b.WriteString(m.String())
		b.WriteString("}")
	}
}

// Pending is a macro that may still contain commands.
type Pending struct {
	fragments []Fragment
}

// Fragments returns a copy of the macro's fragments in order.
func (p Pending) Fragments() []Fragment {
	return cloneFragments(p.fragments)
}

// Len returns the number of fragments.
func (p Pending) Len() int {
	return len(p.fragments)
}

// Resolve replaces every command with its chord for the platform, keeping
// all other fragments and their order.
func (p Pending) Resolve(platform command.Platform) Macro {
	outputs := make([]Output, 0, len(p.fragments))
	for _, f := range p.fragments {
		switch f := f.(type) {
		case Cmd:
			outputs = append(outputs, Chord{Shortcut: command.Resolve(f.Command, platform)})
		case Keys:
			outputs = append(outputs, slices.Clone(f))
		case Chord:
			outputs = append(outputs, f)
		default:
			panic(fmt.Sprintf("macro: unhandled fragment type %T", f))
		}
	}
	return Macro{outputs: outputs}
}

// Macro is a resolved macro: only keystrokes and concrete chords.
type Macro struct {
	outputs []Output
}

// NewMacro creates a resolved macro from outputs.
func NewMacro(outputs ...Output) Macro {
	return Macro{outputs: cloneOutputs(outputs)}
}

// Outputs returns a copy of the macro's outputs in order.
func (m Macro) Outputs() []Output {
	return cloneOutputs(m.outputs)
}

// Len returns the number of outputs.
func (m Macro) Len() int {
	return len(m.outputs)
}

// String renders the macro body in the importer's token format.
func (m Macro) String() string {
	var b strings.Builder
	for _, o := range m.outputs {
		o.render(&b)
	}
	return b.String()
}

func cloneFragments(in []Fragment) []Fragment {
	out := make([]Fragment, len(in))
	for i, f := range in {
		if k, ok := f.(Keys); ok {
			f = slices.Clone(k)
		}
		out[i] = f
	}
	return out
}

func cloneOutputs(in []Output) []Output {
	out := make([]Output, len(in))
	for i, o := range in {
		if k, ok := o.(Keys); ok {
			o = slices.Clone(k)
		}
		out[i] = o
	}
	return out
}

package macro

import (
	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
)

// Builder accumulates fragments in call order.
//
// The first error (an unsupported character) sticks: later calls are ignored
// and Build returns it. Adjacent keystroke fragments are merged so shift
// toggles stay minimal across calls.
type Builder struct {
	fragments []Fragment
	err       error
}

// NewBuilder creates an empty macro builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// FromString creates a builder that starts by typing s.
func FromString(s string) *Builder {
	return NewBuilder().Text(s)
}

// Text types s literally.
func (b *Builder) Text(s string) *Builder {
	if b.err != nil {
		return b
	}
	presses, err := TextToKeyPresses(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.keys(presses...)
}

// Left moves the cursor left n times.
func (b *Builder) Left(n int) *Builder {
	return b.repeat(key.LeftArrow, n)
}

// Right moves the cursor right n times.
func (b *Builder) Right(n int) *Builder {
	return b.repeat(key.RightArrow, n)
}

// Up moves the cursor up n times.
func (b *Builder) Up(n int) *Builder {
	return b.repeat(key.UpArrow, n)
}

// Down moves the cursor down n times.
func (b *Builder) Down(n int) *Builder {
	return b.repeat(key.DownArrow, n)
}

// Shortcut presses a concrete chord.
func (b *Builder) Shortcut(s key.Shortcut) *Builder {
	if b.err != nil {
		return b
	}
	b.fragments = append(b.fragments, Chord{Shortcut: s})
	return b
}

// Command performs a platform-agnostic command, resolved when the layout is made.
func (b *Builder) Command(c command.Command) *Builder {
	if b.err != nil {
		return b
	}
	b.fragments = append(b.fragments, Cmd{Command: c})
	return b
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the pending macro, or the first error encountered.
func (b *Builder) Build() (Pending, error) {
	if b.err != nil {
		return Pending{}, b.err
	}
	return Pending{fragments: cloneFragments(b.fragments)}, nil
}

// MustBuild is like Build but panics on error. It is meant for macros built
// from literal strings known to be typeable.
func (b *Builder) MustBuild() Pending {
	p, err := b.Build()
	if err != nil {
		panic("macro: " + err.Error())
	}
	return p
}

func (b *Builder) repeat(k key.NonModifier, n int) *Builder {
	if n <= 0 {
		return b
	}
	presses := make([]key.KeyPress, n)
	for i := range presses {
		presses[i] = key.Press(k)
	}
	return b.keys(presses...)
}

func (b *Builder) keys(presses ...key.KeyPress) *Builder {
	if b.err != nil || len(presses) == 0 {
		return b
	}
	if n := len(b.fragments); n > 0 {
		if last, ok := b.fragments[n-1].(Keys); ok {
			merged := make(Keys, 0, len(last)+len(presses))
			merged = append(append(merged, last...), presses...)
			b.fragments[n-1] = merged
			return b
		}
	}
	b.fragments = append(b.fragments, Keys(presses))
	return b
}

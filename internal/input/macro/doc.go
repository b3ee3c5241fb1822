// Package macro builds the multi-step output a keyboard replays when a macro
// trigger is pressed.
//
// # Concepts
//
// A macro is an ordered list of fragments. Each fragment is one of:
//
//   - Keys: literal keystrokes (typed text or cursor movement)
//   - Chord: a concrete shortcut such as lwin+right
//   - Cmd: a platform-agnostic editing command such as line_end
//
// Macros are assembled with a Builder, which produces a Pending macro. A
// Pending macro may still contain commands. Resolving it against a platform
// replaces every command with its chord and yields a Macro, which can only
// hold Keys and Chord fragments and is what gets serialized.
//
// Example:
//
//	m, err := macro.FromString("www.test.com\nTHANKS").
//	    Left(6).
//	    Command(command.LineEnd).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	out := m.Resolve(command.Mac)
//
// # Text
//
// Literal text is limited to printable US-ASCII plus space, tab and newline.
// Any other character makes Build fail with ErrUnsupportedChar; the macro is
// never produced.
//
// # Rendering
//
// Keystroke runs only toggle shift at state changes, so "THANKS" renders as a
// single {-lshift} ... {+lshift} pair around six keys. Chords press their
// modifiers outside-in around the base key and release them afterwards.
package macro

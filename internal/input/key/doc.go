// Package key provides the key space of the keyboard: physical keys, the two
// addressing layers, and the canonical text tokens the configuration importer
// understands.
//
// This package defines the fundamental types for describing keyboard behavior:
//
//   - Modifier: one of the eight modifier keys (left/right shift, win/cmd, ctrl, alt)
//   - NonModifier: a base key (letters, digits, punctuation, navigation keys)
//   - Key: either a Modifier or a NonModifier
//   - Layer: whether the keypad layer is active
//   - KeyLayer: a Key addressed under a Layer, the real identity of a physical key
//   - KeyPress: a single literal keystroke, optionally shifted
//   - Shortcut: a chord of modifiers plus one base key under a Layer
//
// # Tokens
//
// With the keypad layer off, keys render as their own short spelling:
// "a", "1", "enter", "pup", "obrack". With the keypad layer on, the keys that
// form the embedded numeric pad render as fixed keypad tokens ("kp0" for space,
// "kp5" for k, "kpplus" for semicolon, ...) and every other key renders as
// "kp-<name>".
//
// # Ordering
//
// All types are comparable and can be used as map keys. Each also has a total,
// content-based order (Compare) so that output built from maps can be sorted
// deterministically.
package key

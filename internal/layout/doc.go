// Package layout holds a finalized keyboard layout and renders it in the
// line-oriented text format read by the keyboard's configuration importer.
//
// A Layout is created once, from a configure.Configure, and never changes
// afterwards. Rendering is a pure function of its contents:
//
//	[a]>[left]
//	[kp-enter]>[kp0]
//	[`]>[null]
//	{rshift}{lalt}{t}>{w}{w}{w}{.}{t}{e}{s}{t}
//
// Remap lines come first, sorted by source key (normal layer before keypad
// layer). Macro lines follow, sorted by trigger shortcut. All text is lowercase
// and lines are joined with a single newline.
package layout

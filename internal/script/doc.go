// Package script runs Lua configuration scripts against a layout builder.
//
// Scripts execute in a sandboxed gopher-lua state: only the base, table,
// string and math libraries are opened, and the functions that load code
// from disk or strings are removed. A global kb table exposes the builder:
//
//	kb.platform("mac")
//	kb.preset("colemak")
//	kb.remap("a", "left")
//	kb.remap_keypad("enter", "space")
//	kb.dead_key("`")
//	kb.invert_numbers()
//	kb.macro("rshift+lalt+t", { "www.test.com\nTHANKS", { left = 6 } })
//	kb.macro("rshift+lalt+i", {
//	    { command = "line_end" },
//	    "if  {\n",
//	    { down = 1 },
//	    { chord = "lwin+right" },
//	})
//
// Any error raised while the script runs aborts it. The returned error wraps
// ErrScript and, when a kb call failed, the underlying Go error as well, so
// callers can test for key.ErrUnknownKey or macro.ErrUnsupportedChar.
package script

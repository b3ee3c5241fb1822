package script

import (
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
)

// installKB registers the global kb table.
func (s *State) installKB() {
	L := s.L
	kb := L.NewTable()

	L.SetField(kb, "platform", L.NewFunction(s.platform))
	L.SetField(kb, "preset", L.NewFunction(s.preset))
	L.SetField(kb, "load", L.NewFunction(s.load))

	L.SetField(kb, "remap", L.NewFunction(s.remap))
	L.SetField(kb, "remap_keypad", L.NewFunction(s.remapKeypad))
	L.SetField(kb, "remap_all", L.NewFunction(s.remapAll))
	L.SetField(kb, "remap_layers", L.NewFunction(s.remapLayers))
	L.SetField(kb, "dead_key", L.NewFunction(s.deadKey))
	L.SetField(kb, "keypad_dead_key", L.NewFunction(s.keypadDeadKey))
	L.SetField(kb, "remove_remap", L.NewFunction(s.removeRemap))
	L.SetField(kb, "remove_remap_keypad", L.NewFunction(s.removeRemapKeypad))

	L.SetField(kb, "invert", L.NewFunction(s.invert))
	L.SetField(kb, "invert_keypad", L.NewFunction(s.invertKeypad))
	L.SetField(kb, "invert_numbers", L.NewFunction(s.invertNumbers))

	L.SetField(kb, "macro", L.NewFunction(s.macro))

	L.SetGlobal("kb", kb)
}

// fail raises err in Lua and remembers it under the raised message, so the
// run can report it as the cause if that message ends the script.
// RaiseError does not return.
func (s *State) fail(L *lua.LState, fn string, err error) {
	msg := fmt.Sprintf("kb.%s: %v", fn, err)
	s.causes[msg] = err
	L.RaiseError("%s", msg)
}

func (s *State) checkKey(L *lua.LState, n int, fn string) key.Key {
	k, err := key.ParseKey(L.CheckString(n))
	if err != nil {
		s.fail(L, fn, err)
	}
	return k
}

func (s *State) checkKeyLayer(L *lua.LState, n int, fn string) key.KeyLayer {
	kl, err := key.ParseKeyLayer(L.CheckString(n))
	if err != nil {
		s.fail(L, fn, err)
	}
	return kl
}

func (s *State) checkNonModifier(L *lua.LState, n int, fn string) key.NonModifier {
	k, err := key.ParseNonModifier(L.CheckString(n))
	if err != nil {
		s.fail(L, fn, err)
	}
	return k
}

// platform([name]) -> name
// Selects the platform when given a name; always returns the current one.
func (s *State) platform(L *lua.LState) int {
	if L.GetTop() >= 1 {
		p, err := command.ParsePlatform(L.CheckString(1))
		if err != nil {
			s.fail(L, "platform", err)
		}
		s.env.Configure.SetPlatform(p)
	}
	L.Push(lua.LString(s.env.Configure.Platform().String()))
	return 1
}

// preset(name) -> count
// Merges a registered remap table and returns its number of entries.
func (s *State) preset(L *lua.LState) int {
	km, err := s.env.Registry.Lookup(L.CheckString(1))
	if err != nil {
		s.fail(L, "preset", err)
	}
	s.env.Configure.WithRemappings(km.Remaps)
	s.env.Logger.Debug("preset applied", "name", km.Name, "remaps", km.Len())
	L.Push(lua.LNumber(km.Len()))
	return 1
}

// load(path) -> name
// Reads a JSON remap table, registers it and merges it.
func (s *State) load(L *lua.LState) int {
	path := L.CheckString(1)
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}

	km, err := s.env.Loader.LoadFile(path)
	if err != nil {
		s.fail(L, "load", err)
	}
	s.env.Registry.Register(km)
	s.env.Configure.WithRemappings(km.Remaps)
	s.env.Logger.Debug("remap table loaded", "name", km.Name, "path", path, "remaps", km.Len())
	L.Push(lua.LString(km.Name))
	return 1
}

// remap(from, to)
func (s *State) remap(L *lua.LState) int {
	from := s.checkKey(L, 1, "remap")
	to := s.checkKey(L, 2, "remap")
	s.env.Configure.Remap(from, to)
	return 0
}

// remap_keypad(from, to)
func (s *State) remapKeypad(L *lua.LState) int {
	from := s.checkKey(L, 1, "remap_keypad")
	to := s.checkKey(L, 2, "remap_keypad")
	s.env.Configure.RemapKeypad(from, to)
	return 0
}

// remap_all(from, to)
func (s *State) remapAll(L *lua.LState) int {
	from := s.checkKey(L, 1, "remap_all")
	to := s.checkKey(L, 2, "remap_all")
	s.env.Configure.RemapAll(from, to)
	return 0
}

// remap_layers(from, to)
// Both names take an optional "kp:" prefix.
func (s *State) remapLayers(L *lua.LState) int {
	from := s.checkKeyLayer(L, 1, "remap_layers")
	to := s.checkKeyLayer(L, 2, "remap_layers")
	s.env.Configure.RemapLayers(from, to)
	return 0
}

// dead_key(k)
func (s *State) deadKey(L *lua.LState) int {
	s.env.Configure.DeadKey(s.checkKey(L, 1, "dead_key"))
	return 0
}

// keypad_dead_key(k)
func (s *State) keypadDeadKey(L *lua.LState) int {
	s.env.Configure.KeypadDeadKey(s.checkKey(L, 1, "keypad_dead_key"))
	return 0
}

// remove_remap(k)
func (s *State) removeRemap(L *lua.LState) int {
	s.env.Configure.RemoveRemap(s.checkKey(L, 1, "remove_remap"))
	return 0
}

// remove_remap_keypad(k)
func (s *State) removeRemapKeypad(L *lua.LState) int {
	s.env.Configure.RemoveRemapKeypad(s.checkKey(L, 1, "remove_remap_keypad"))
	return 0
}

// invert(k)
func (s *State) invert(L *lua.LState) int {
	s.env.Configure.InvertKey(s.checkNonModifier(L, 1, "invert"))
	return 0
}

// invert_keypad(k)
func (s *State) invertKeypad(L *lua.LState) int {
	s.env.Configure.InvertKeypadKey(s.checkNonModifier(L, 1, "invert_keypad"))
	return 0
}

// invert_numbers()
func (s *State) invertNumbers(L *lua.LState) int {
	s.env.Configure.InvertNumbers()
	return 0
}

// macro(trigger, body)
// body is a string of text or a list of fragments; see buildMacro.
func (s *State) macro(L *lua.LState) int {
	trigger, err := key.ParseShortcut(L.CheckString(1))
	if err != nil {
		s.fail(L, "macro", err)
	}

	m, err := buildMacro(L.CheckAny(2))
	if err != nil {
		s.fail(L, "macro", fmt.Errorf("%s: %w", trigger, err))
	}
	s.env.Configure.WithMacro(trigger, m)
	s.env.Logger.Debug("macro registered", "trigger", trigger.String(), "fragments", m.Len())
	return 0
}

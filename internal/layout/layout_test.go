package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/keyforge/internal/input/command"
	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/input/macro"
)

func sampleLayout() *Layout {
	remaps := Remaps{
		key.Off(key.Non(key.A)):        To(key.Off(key.Non(key.LeftArrow))),
		key.On(key.Non(key.Enter)):     To(key.On(key.Non(key.Space))),
		key.Off(key.Non(key.Backtick)): Dead(),
	}
	macros := map[key.Shortcut]macro.Macro{
		key.NewShortcut(key.Modifiers(key.RightShift), key.One): macro.NewMacro(
			macro.Chord{Shortcut: key.NewShortcut(key.NoModifiers, key.One)},
		),
		key.NewShortcut(key.NoModifiers, key.One): macro.NewMacro(
			macro.Chord{Shortcut: key.NewShortcut(key.Modifiers(key.RightShift), key.One)},
		),
	}
	return New(command.PC, remaps, macros)
}

func TestTargetToken(t *testing.T) {
	if got := Dead().Token(); got != "null" {
		t.Errorf("Dead().Token() = %q, want null", got)
	}
	if !Dead().IsDead() || To(key.Off(key.Non(key.A))).IsDead() {
		t.Error("IsDead() wrong")
	}
	var zero Target
	if !zero.IsDead() {
		t.Error("zero Target should be a dead key")
	}
	if got := To(key.On(key.Non(key.Space))).Token(); got != "kp0" {
		t.Errorf("Token() = %q, want kp0", got)
	}
}

func TestLayoutString(t *testing.T) {
	want := strings.Join([]string{
		"[`]>[null]",
		"[a]>[left]",
		"[kp-enter]>[kp0]",
		"{1}>{-rshift}{1}{+rshift}",
		"{rshift}{1}>{1}",
	}, "\n")

	if got := sampleLayout().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestLayoutStringDeterministic(t *testing.T) {
	first := sampleLayout().String()
	for i := 0; i < 20; i++ {
		if got := sampleLayout().String(); got != first {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := New(command.PC, nil, nil)
	if got := l.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
	if l.RemapCount() != 0 || l.MacroCount() != 0 {
		t.Error("empty layout reports entries")
	}
}

func TestLayoutIsolatedFromInputs(t *testing.T) {
	remaps := Remaps{key.Off(key.Non(key.A)): To(key.Off(key.Non(key.B)))}
	l := New(command.PC, remaps, nil)
	remaps[key.Off(key.Non(key.C))] = Dead()
	if l.RemapCount() != 1 {
		t.Errorf("RemapCount() = %d, want 1", l.RemapCount())
	}

	got := l.Remaps()
	got[key.Off(key.Non(key.D))] = Dead()
	if l.RemapCount() != 1 {
		t.Error("Remaps() leaked internal state")
	}
}

func TestLayoutMacrosIsolated(t *testing.T) {
	trigger := key.NewShortcut(key.Modifiers(key.LeftControl), key.E)
	macros := map[key.Shortcut]macro.Macro{
		trigger: macro.NewMacro(macro.Chord{Shortcut: key.NewShortcut(key.NoModifiers, key.End)}),
	}
	l := New(command.PC, nil, macros)
	delete(macros, trigger)
	if l.MacroCount() != 1 {
		t.Errorf("MacroCount() = %d, want 1", l.MacroCount())
	}

	got := l.Macros()
	if m, ok := got[trigger]; !ok || m.String() != "{end}" {
		t.Errorf("Macros()[lctrl+e] = %q, %v; want {end}", m.String(), ok)
	}
	delete(got, trigger)
	got[key.NewShortcut(key.NoModifiers, key.F1)] = macro.NewMacro()
	if l.MacroCount() != 1 {
		t.Error("Macros() leaked internal state")
	}
	if _, ok := l.Macro(trigger); !ok {
		t.Error("Macro(lctrl+e) missing after mutating the copy")
	}
}

func TestLayoutLookups(t *testing.T) {
	l := sampleLayout()
	if tgt, ok := l.Remap(key.Off(key.Non(key.Backtick))); !ok || !tgt.IsDead() {
		t.Errorf("Remap(`) = %v, %v; want dead key", tgt, ok)
	}
	if _, ok := l.Remap(key.On(key.Non(key.A))); ok {
		t.Error("Remap(kp:a) should be absent")
	}
	if m, ok := l.Macro(key.NewShortcut(key.NoModifiers, key.One)); !ok || m.String() != "{-rshift}{1}{+rshift}" {
		t.Errorf("Macro({1}) = %q, %v", m.String(), ok)
	}
}

func TestLayoutWriteTo(t *testing.T) {
	var buf bytes.Buffer
	l := sampleLayout()
	n, err := l.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if int(n) != buf.Len() || buf.String() != l.String() {
		t.Errorf("WriteTo wrote %d bytes %q", n, buf.String())
	}
}

func TestLayoutJSON(t *testing.T) {
	doc, err := sampleLayout().JSON()
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	if !gjson.Valid(doc) {
		t.Fatalf("invalid JSON: %s", doc)
	}

	tests := []struct {
		path string
		want string
	}{
		{"platform", "pc"},
		{"remaps.#", "3"},
		{"remaps.0.from", "`"},
		{"remaps.0.to", ""},
		{"remaps.2.layer", "on"},
		{"remaps.2.line", "[kp-enter]>[kp0]"},
		{"macros.#", "2"},
		{"macros.0.trigger", "1"},
		{"macros.1.line", "{rshift}{1}>{1}"},
	}
	for _, tt := range tests {
		if got := gjson.Get(doc, tt.path).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}
	if gjson.Get(doc, "remaps.0.to").Type != gjson.Null {
		t.Error("dead key target should be null")
	}
}

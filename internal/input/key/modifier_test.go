package key

import (
	"testing"
)

func TestModifierString(t *testing.T) {
	want := []string{"lshift", "rshift", "lwin", "rwin", "lctrl", "rctrl", "lalt", "ralt"}
	mods := AllModifiers()
	if len(mods) != len(want) {
		t.Fatalf("len(AllModifiers()) = %d, want %d", len(mods), len(want))
	}
	for i, m := range mods {
		if got := m.String(); got != want[i] {
			t.Errorf("Modifier(%d).String() = %q, want %q", i, got, want[i])
		}
	}
}

func TestModifierSetNoDuplicates(t *testing.T) {
	s := Modifiers(RightShift, LeftAlt, RightShift)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s != Modifiers(LeftAlt, RightShift) {
		t.Error("sets with the same members should be equal regardless of order")
	}
}

func TestModifierSetSliceIsSorted(t *testing.T) {
	s := Modifiers(LeftAlt, RightShift, LeftControl)
	got := s.Slice()
	want := []Modifier{RightShift, LeftControl, LeftAlt}
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if s.String() != "rshift+lctrl+lalt" {
		t.Errorf("String() = %q, want %q", s.String(), "rshift+lctrl+lalt")
	}
}

func TestModifierSetWithWithout(t *testing.T) {
	s := NoModifiers.With(LeftShift).With(RightWindowsCommand)
	if !s.Has(LeftShift) || !s.Has(RightWindowsCommand) {
		t.Error("With() did not add modifiers")
	}
	s = s.Without(LeftShift)
	if s.Has(LeftShift) {
		t.Error("Without() did not remove lshift")
	}
	if !NoModifiers.IsEmpty() || s.IsEmpty() {
		t.Error("IsEmpty() wrong")
	}
}

func TestModifierSetCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b ModifierSet
		want int
	}{
		{"empty first", NoModifiers, Modifiers(LeftShift), -1},
		{"prefix first", Modifiers(RightShift), Modifiers(RightShift, LeftAlt), -1},
		{"element order wins over length", Modifiers(LeftShift, RightShift), Modifiers(RightShift), -1},
		{"greater element", Modifiers(RightAlt), Modifiers(LeftShift, LeftAlt), 1},
		{"equal", Modifiers(LeftAlt), Modifiers(LeftAlt), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

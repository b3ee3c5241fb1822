package key

import (
	"testing"
)

func TestNonModifierString(t *testing.T) {
	tests := []struct {
		key  NonModifier
		want string
	}{
		{F1, "f1"},
		{F12, "f12"},
		{One, "1"},
		{Zero, "0"},
		{Backtick, "`"},
		{Hyphen, "hyphen"},
		{Equals, "="},
		{A, "a"},
		{Z, "z"},
		{BackSlash, `\`},
		{SemiColon, ";"},
		{Quote, "'"},
		{OpenBracket, "obrack"},
		{CloseBracket, "cbrack"},
		{PageUp, "pup"},
		{PageDown, "pdown"},
		{LeftArrow, "left"},
		{Backspace, "bspace"},
		{End, "end"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("NonModifier.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNonModifierTokensUnique(t *testing.T) {
	seen := make(map[string]NonModifier)
	for _, k := range AllNonModifiers() {
		tok := k.String()
		if tok == "" {
			t.Errorf("NonModifier(%d) has empty token", k)
		}
		if prev, ok := seen[tok]; ok {
			t.Errorf("token %q shared by %d and %d", tok, prev, k)
		}
		seen[tok] = k
	}
}

func TestNonModifierClassification(t *testing.T) {
	if !Zero.IsDigit() || !One.IsDigit() || Backtick.IsDigit() {
		t.Error("IsDigit misclassifies the number row")
	}
	if !A.IsLetter() || !Z.IsLetter() || BackSlash.IsLetter() {
		t.Error("IsLetter misclassifies letters")
	}
	if !F12.IsFunctionKey() || One.IsFunctionKey() {
		t.Error("IsFunctionKey misclassifies function keys")
	}
	if !UpArrow.IsArrowKey() || Home.IsArrowKey() {
		t.Error("IsArrowKey misclassifies arrows")
	}
	if len(Digits()) != 10 {
		t.Errorf("len(Digits()) = %d, want 10", len(Digits()))
	}
}

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{"modifier before base key", Mod(RightAlt), Non(F1), -1},
		{"base key after modifier", Non(F1), Mod(LeftShift), 1},
		{"modifier order", Mod(LeftShift), Mod(RightShift), -1},
		{"base key order", Non(Backtick), Non(A), -1},
		{"semicolon after letters", Non(SemiColon), Non(Z), 1},
		{"equal", Non(Enter), Non(Enter), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyAccessors(t *testing.T) {
	k := Mod(LeftAlt)
	if m, ok := k.Modifier(); !ok || m != LeftAlt {
		t.Errorf("Modifier() = %v, %v; want lalt, true", m, ok)
	}
	if _, ok := k.NonModifier(); ok {
		t.Error("NonModifier() should report false for a modifier")
	}

	k = Non(Space)
	if nm, ok := k.NonModifier(); !ok || nm != Space {
		t.Errorf("NonModifier() = %v, %v; want space, true", nm, ok)
	}
	if k.IsModifier() {
		t.Error("IsModifier() should be false for space")
	}
}

func TestKeyLayerToken(t *testing.T) {
	tests := []struct {
		kl   KeyLayer
		want string
	}{
		{Off(Non(Enter)), "enter"},
		{Off(Non(A)), "a"},
		{Off(Mod(RightShift)), "rshift"},
		{On(Non(Space)), "kp0"},
		{On(Non(M)), "kp1"},
		{On(Non(Comma)), "kp2"},
		{On(Non(FullStop)), "kp3"},
		{On(Non(J)), "kp4"},
		{On(Non(K)), "kp5"},
		{On(Non(L)), "kp6"},
		{On(Non(U)), "kp7"},
		{On(Non(I)), "kp8"},
		{On(Non(O)), "kp9"},
		{On(Non(Seven)), "numlk"},
		{On(Non(CloseBracket)), "k."},
		{On(Non(Eight)), "k="},
		{On(Non(Nine)), "kpdiv"},
		{On(Non(SemiColon)), "kpplus"},
		{On(Non(Zero)), "kpmult"},
		{On(Non(P)), "kpmin"},
		{On(Non(ForwardSlash)), "kpenter1"},
		{On(Non(Enter)), "kp-enter"},
		{On(Non(A)), "kp-a"},
		{On(Mod(LeftShift)), "kp-lshift"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kl.Token(); got != tt.want {
				t.Errorf("KeyLayer.Token() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyLayerTokenTotalAndInjective(t *testing.T) {
	for _, layer := range []Layer{LayerOff, LayerOn} {
		seen := make(map[string]KeyLayer)
		var keys []Key
		for _, m := range AllModifiers() {
			keys = append(keys, Mod(m))
		}
		for _, k := range AllNonModifiers() {
			keys = append(keys, Non(k))
		}

		for _, k := range keys {
			kl := KeyLayer{Layer: layer, Key: k}
			tok := kl.Token()
			if tok == "" {
				t.Errorf("%v has empty token", kl.Key)
			}
			if prev, ok := seen[tok]; ok {
				t.Errorf("layer %s: token %q shared by %v and %v", layer, tok, prev.Key, k)
			}
			seen[tok] = kl
		}
	}
}

func TestKeyLayerEqualityIsLayerSensitive(t *testing.T) {
	if Off(Non(Enter)) == On(Non(Enter)) {
		t.Error("keypad-off enter must differ from keypad-on enter")
	}
	m := map[KeyLayer]int{Off(Non(Enter)): 1, On(Non(Enter)): 2}
	if len(m) != 2 {
		t.Errorf("map has %d entries, want 2", len(m))
	}
}

func TestKeyLayerCompare(t *testing.T) {
	if Off(Non(End)).Compare(On(Non(F1))) >= 0 {
		t.Error("layer off should sort before layer on")
	}
	if On(Non(A)).Compare(On(Non(B))) >= 0 {
		t.Error("a should sort before b in the same layer")
	}
	if Off(Non(A)).Compare(Off(Non(A))) != 0 {
		t.Error("identical key layers should compare equal")
	}
}

package key

import "testing"

func TestParseCombo(t *testing.T) {
	tests := []struct {
		spec string
		want Combination
	}{
		{"k", Combination{Key: "k"}},
		{"K", Combination{Key: "k"}},
		{"ctrl+k", Combination{Key: "k", Mods: ModCtrl}},
		{"Control+K", Combination{Key: "k", Mods: ModCtrl}},
		{"ctrl+shift+k", Combination{Key: "k", Mods: ModCtrl | ModShift}},
		{"meta+k", Combination{Key: "k", Mods: ModMeta}},
		{"cmd+k", Combination{Key: "k", Mods: ModMeta}},
		{"Command+K", Combination{Key: "k", Mods: ModMeta}},
		{"option+x", Combination{Key: "x", Mods: ModAlt}},
		{"ctrl+ArrowUp", Combination{Key: "arrowup", Mods: ModCtrl}},
		{"shift+?", Combination{Key: "?", Mods: ModShift}},
		{"shift++", Combination{Key: "+", Mods: ModShift}},
		// Unrecognized aliases are dropped, not errors.
		{"hyper+k", Combination{Key: "k"}},
		{"ctrl+bogus+k", Combination{Key: "k", Mods: ModCtrl}},
	}

	for _, tt := range tests {
		if got := ParseCombo(tt.spec); !got.Equals(tt.want) {
			t.Errorf("ParseCombo(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		spec string
		want []Combination
	}{
		{"g t", []Combination{{Key: "g"}, {Key: "t"}}},
		{"  g   t  ", []Combination{{Key: "g"}, {Key: "t"}}},
		{"ctrl+k p", []Combination{{Key: "k", Mods: ModCtrl}, {Key: "p"}}},
		{"ctrl+shift+k", []Combination{{Key: "k", Mods: ModCtrl | ModShift}}},
	}

	for _, tt := range tests {
		got := ParseSequence(tt.spec)
		want := NewSequenceFrom(tt.want...)
		if !got.Equals(want) {
			t.Errorf("ParseSequence(%q) = %q, want %q", tt.spec, got.ID(), want.ID())
		}
	}
}

func TestParseSequenceEmpty(t *testing.T) {
	for _, spec := range []string{"", "   ", "\t"} {
		seq := ParseSequence(spec)
		if !seq.IsEmpty() {
			t.Errorf("ParseSequence(%q) = %q, want empty", spec, seq.ID())
		}
	}
}

func TestSequenceID(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		// Canonical modifier order is ctrl, meta, alt, shift.
		{"shift+ctrl+k", "ctrl+shift+k"},
		{"alt+meta+ctrl+shift+p", "ctrl+meta+alt+shift+p"},
		{"cmd+K", "meta+k"},
		{"g t", "g t"},
		{"ctrl+ArrowUp g", "ctrl+arrowup g"},
	}

	for _, tt := range tests {
		if got := ParseSequence(tt.spec).ID(); got != tt.want {
			t.Errorf("ParseSequence(%q).ID() = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

package key

import "testing"

func TestRawEventModifiers(t *testing.T) {
	ev := RawEvent{RawKey: "k", Ctrl: true, Shift: true}
	if got := ev.Modifiers(); got != ModCtrl|ModShift {
		t.Errorf("Modifiers() = %v, want ctrl+shift", got)
	}

	ev = RawEvent{RawKey: "k"}
	if got := ev.Modifiers(); got != ModNone {
		t.Errorf("Modifiers() = %v, want none", got)
	}
}

func TestRawEventCombination(t *testing.T) {
	ev := RawEvent{RawKey: "ArrowUp", Alt: true}
	combo, ok := ev.Combination()
	if !ok {
		t.Fatal("Combination() not ok for non-modifier key")
	}
	if combo.Key != "arrowup" || combo.Mods != ModAlt {
		t.Errorf("Combination() = %v, want alt+arrowup", combo)
	}

	// Bare modifier presses never form a combination.
	for _, raw := range []string{"Control", "Alt", "Shift", "Meta"} {
		ev := RawEvent{RawKey: raw}
		if _, ok := ev.Combination(); ok {
			t.Errorf("Combination() ok for modifier key %q", raw)
		}
	}
}

func TestModifierTokens(t *testing.T) {
	m := ModShift | ModCtrl | ModMeta
	want := []string{"ctrl", "meta", "shift"}
	got := m.Tokens()
	if len(got) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if ModNone.Tokens() != nil {
		t.Error("ModNone.Tokens() should be nil")
	}
}

func TestModifierFromAlias(t *testing.T) {
	tests := []struct {
		alias string
		want  Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"alt", ModAlt},
		{"OPTION", ModAlt},
		{"shift", ModShift},
		{"meta", ModMeta},
		{"cmd", ModMeta},
		{"command", ModMeta},
		{"hyper", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromAlias(tt.alias); got != tt.want {
			t.Errorf("ModifierFromAlias(%q) = %v, want %v", tt.alias, got, tt.want)
		}
	}
}

package key

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{" ", "space"},
		{"Escape", "escape"},
		{"Enter", "enter"},
		{"Tab", "tab"},
		{"Backspace", "backspace"},
		{"Delete", "delete"},
		{"ArrowUp", "arrowup"},
		{"ArrowDown", "arrowdown"},
		{"ArrowLeft", "arrowleft"},
		{"ArrowRight", "arrowright"},
		{"Home", "home"},
		{"End", "end"},
		{"PageUp", "pageup"},
		{"PageDown", "pagedown"},
		{"K", "k"},
		{"k", "k"},
		{"?", "?"},
		{"F1", "f1"},
		{"f12", "f12"},
		{"MediaPlayPause", "mediaplaypause"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raws := []string{" ", "Escape", "ArrowUp", "K", "?", "F3", "PageDown", "weird-token"}
	for _, raw := range raws {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", raw, twice, once)
		}
	}
}

func TestIsModifierKey(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"Control", true},
		{"ctrl", true},
		{"Alt", true},
		{"Shift", true},
		{"Meta", true},
		{"k", false},
		{"Escape", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsModifierKey(tt.raw); got != tt.want {
			t.Errorf("IsModifierKey(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestIsShiftRequired(t *testing.T) {
	for _, r := range shiftRequiredChars {
		if !IsShiftRequired(string(r)) {
			t.Errorf("IsShiftRequired(%q) = false, want true", string(r))
		}
	}

	for _, raw := range []string{"k", "1", "-", "=", "Escape", "", "??"} {
		if IsShiftRequired(raw) {
			t.Errorf("IsShiftRequired(%q) = true, want false", raw)
		}
	}
}

package key

import (
	"runtime"
	"strings"
)

// Display is the presentation form of a Sequence.
type Display struct {
	// Display is the human-readable rendering, platform-aware.
	Display string

	// ID is the canonical string form of the sequence.
	ID string

	// IsSequence is true iff the sequence has more than one combination.
	IsSequence bool
}

// compactPlatform reports whether the current platform family renders
// shortcuts as concatenated glyphs (the macOS convention) rather than
// "+"-joined words. Evaluated at call time; swappable for tests.
var compactPlatform = func() bool {
	return runtime.GOOS == "darwin"
}

// modifier glyphs in canonical order ctrl, meta, alt, shift.
var modifierGlyphs = map[Modifier]string{
	ModCtrl:  "⌃",
	ModMeta:  "⌘",
	ModAlt:   "⌥",
	ModShift: "⇧",
}

// modifier word labels for non-compact platforms.
var modifierLabels = map[Modifier]string{
	ModCtrl:  "Ctrl",
	ModMeta:  "Meta",
	ModAlt:   "Alt",
	ModShift: "Shift",
}

// keyGlyphs maps canonical key tokens to display glyphs or labels.
var keyGlyphs = map[string]string{
	"enter":      "↵",
	"escape":     "Esc",
	"tab":        "⇥",
	"backspace":  "⌫",
	"delete":     "⌦",
	"space":      "Space",
	"arrowup":    "↑",
	"arrowdown":  "↓",
	"arrowleft":  "←",
	"arrowright": "→",
	"home":       "Home",
	"end":        "End",
	"pageup":     "PgUp",
	"pagedown":   "PgDn",
}

// keyLabel returns the display form of a key token.
func keyLabel(token string) string {
	if g, ok := keyGlyphs[token]; ok {
		return g
	}
	return strings.ToUpper(token)
}

// describeCombo renders one combination for display.
func describeCombo(c Combination, compact bool) string {
	if compact {
		var sb strings.Builder
		for _, ord := range canonicalOrder {
			if c.Mods.Has(ord.mod) {
				sb.WriteString(modifierGlyphs[ord.mod])
			}
		}
		sb.WriteString(keyLabel(c.Key))
		return sb.String()
	}

	parts := make([]string, 0, 5)
	for _, ord := range canonicalOrder {
		if c.Mods.Has(ord.mod) {
			parts = append(parts, modifierLabels[ord.mod])
		}
	}
	parts = append(parts, keyLabel(c.Key))
	return strings.Join(parts, "+")
}

// Describe renders a Sequence for presentation. Modifiers appear in the
// fixed order ctrl, meta, alt, shift before the key. On the compact platform
// family the glyphs are concatenated with no separator; elsewhere words are
// joined with "+". Multiple combos are joined with a single space in both
// the display and id forms.
func Describe(seq *Sequence) Display {
	if seq == nil || seq.IsEmpty() {
		return Display{}
	}

	compact := compactPlatform()
	parts := make([]string, seq.Len())
	for i, c := range seq.Combos {
		parts[i] = describeCombo(c, compact)
	}

	return Display{
		Display:    strings.Join(parts, " "),
		ID:         seq.ID(),
		IsSequence: seq.Len() > 1,
	}
}

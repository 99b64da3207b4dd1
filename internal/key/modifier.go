package key

import "strings"

// Modifier represents keyboard modifier keys as a bitmask.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift
)

// canonicalOrder is the fixed modifier order used by canonical IDs and
// display strings: ctrl, meta, alt, shift.
var canonicalOrder = []struct {
	mod   Modifier
	token string
}{
	{ModCtrl, "ctrl"},
	{ModMeta, "meta"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Tokens returns the set modifier tokens in canonical order.
func (m Modifier) Tokens() []string {
	if m == ModNone {
		return nil
	}
	tokens := make([]string, 0, 4)
	for _, c := range canonicalOrder {
		if m.Has(c.mod) {
			tokens = append(tokens, c.token)
		}
	}
	return tokens
}

// String returns the canonical token form, e.g. "ctrl+shift".
func (m Modifier) String() string {
	return strings.Join(m.Tokens(), "+")
}

// modifierAliases maps accepted modifier alias tokens (lowercase) to
// Modifier values. Aliases follow common hotkey-string conventions.
var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
}

// ModifierFromAlias returns the Modifier for an alias token
// (case-insensitive). Returns ModNone for unrecognized aliases; lenient
// parsing drops those silently.
func ModifierFromAlias(alias string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(alias))]
}

// rawModifierNames holds the raw key identifiers reported for bare modifier
// presses. A keydown for one of these never forms a Combination on its own.
var rawModifierNames = map[string]bool{
	"control": true,
	"ctrl":    true,
	"alt":     true,
	"shift":   true,
	"meta":    true,
}

// IsModifierKey returns true if the raw key identifier names one of the four
// modifier keys.
func IsModifierKey(raw string) bool {
	return rawModifierNames[strings.ToLower(raw)]
}

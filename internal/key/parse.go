package key

import "strings"

// ParseCombo parses a single combo substring such as "ctrl+shift+k".
// The last "+"-separated token is the key (normalized); earlier tokens are
// modifier aliases. Unrecognized aliases are dropped silently.
//
// A trailing "+" means the key itself is "+", so "shift++" parses as
// shift with the plus key.
func ParseCombo(s string) Combination {
	s = strings.TrimSpace(s)
	if s == "" {
		return Combination{}
	}

	parts := strings.Split(s, "+")

	// A split on "+" turns a literal plus key into a trailing empty part.
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyPart == "" && len(modParts) > 0 {
		keyPart = "+"
		modParts = modParts[:len(modParts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		mods = mods.With(ModifierFromAlias(p))
	}

	return NewCombination(keyPart, mods)
}

// ParseSequence parses a hotkey string into a Sequence. The grammar is
// whitespace-separated combos, each combo being (modifier "+")* key.
//
// Parsing is lenient and never fails: unknown modifier aliases are dropped,
// producing a combo with fewer modifiers than authored, and an empty string
// yields an empty Sequence, which simply never matches.
func ParseSequence(s string) *Sequence {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewSequence()
	}

	fields := strings.Fields(s)
	seq := &Sequence{Combos: make([]Combination, 0, len(fields))}
	for _, f := range fields {
		combo := ParseCombo(f)
		if combo.IsZero() {
			continue
		}
		seq.Add(combo)
	}
	return seq
}

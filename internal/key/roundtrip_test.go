package key

import (
	"testing"

	"pgregory.net/rapid"
)

// keyTokens is a pool of canonical key tokens for generated sequences.
var keyTokens = []string{
	"a", "g", "k", "t", "z", "1", "9", "/", ".",
	"space", "escape", "enter", "tab", "backspace", "delete",
	"arrowup", "arrowdown", "arrowleft", "arrowright",
	"home", "end", "pageup", "pagedown",
	"f1", "f5", "f12",
}

func genCombination(t *rapid.T) Combination {
	var mods Modifier
	if rapid.Bool().Draw(t, "ctrl") {
		mods = mods.With(ModCtrl)
	}
	if rapid.Bool().Draw(t, "meta") {
		mods = mods.With(ModMeta)
	}
	if rapid.Bool().Draw(t, "alt") {
		mods = mods.With(ModAlt)
	}
	if rapid.Bool().Draw(t, "shift") {
		mods = mods.With(ModShift)
	}
	tok := rapid.SampledFrom(keyTokens).Draw(t, "key")
	return Combination{Key: tok, Mods: mods}
}

// Canonical-id round-trip law: parse(toId(seq)) == seq for any sequence made
// of canonical tokens.
func TestParseIDRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 4).Draw(t, "len")
		seq := NewSequence()
		for i := 0; i < n; i++ {
			seq.Add(genCombination(t))
		}

		parsed := ParseSequence(seq.ID())
		if !parsed.Equals(seq) {
			t.Fatalf("round trip: ParseSequence(%q) = %q", seq.ID(), parsed.ID())
		}
	})
}

// Describe must report the same id as the sequence itself.
func TestDescribeIDMatchesSequenceID(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 3).Draw(t, "len")
		seq := NewSequence()
		for i := 0; i < n; i++ {
			seq.Add(genCombination(t))
		}

		d := Describe(seq)
		if d.ID != seq.ID() {
			t.Fatalf("Describe id = %q, sequence id = %q", d.ID, seq.ID())
		}
		if d.IsSequence != (n > 1) {
			t.Fatalf("IsSequence = %v for length %d", d.IsSequence, n)
		}
	})
}

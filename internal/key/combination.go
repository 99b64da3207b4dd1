package key

import "strings"

// Combination is one key plus a modifier set. Key always holds the
// normalized canonical token and is never a modifier name. A Combination is
// constructed fresh per key event and treated as immutable.
type Combination struct {
	Key  string
	Mods Modifier
}

// NewCombination builds a Combination from a raw key identifier and
// modifier set, normalizing the key.
func NewCombination(raw string, mods Modifier) Combination {
	return Combination{Key: Normalize(raw), Mods: mods}
}

// IsZero returns true if the combination carries no key.
func (c Combination) IsZero() bool {
	return c.Key == ""
}

// Equals returns true if key token and all four modifier flags match exactly.
func (c Combination) Equals(other Combination) bool {
	return c.Key == other.Key && c.Mods == other.Mods
}

// ID returns the canonical string form: set modifier tokens in the order
// ctrl, meta, alt, shift joined with "+", followed by the key token.
func (c Combination) ID() string {
	if c.Mods == ModNone {
		return c.Key
	}
	parts := append(c.Mods.Tokens(), c.Key)
	return strings.Join(parts, "+")
}

// String returns the canonical ID.
func (c Combination) String() string {
	return c.ID()
}

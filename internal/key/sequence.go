package key

import "strings"

// Sequence is an ordered list of Combinations. Length one is a plain
// shortcut; length two or more is a chorded sequence such as "g t". An empty
// Sequence is invalid and never matches anything.
type Sequence struct {
	Combos []Combination
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{
		Combos: make([]Combination, 0, 4), // most sequences are short
	}
}

// NewSequenceFrom creates a sequence from the given combinations.
func NewSequenceFrom(combos ...Combination) *Sequence {
	return &Sequence{Combos: combos}
}

// Len returns the number of combinations in the sequence.
func (s *Sequence) Len() int {
	return len(s.Combos)
}

// IsEmpty returns true if the sequence has no combinations.
func (s *Sequence) IsEmpty() bool {
	return len(s.Combos) == 0
}

// Add appends a combination to the sequence.
func (s *Sequence) Add(c Combination) {
	s.Combos = append(s.Combos, c)
}

// Clear removes all combinations from the sequence.
func (s *Sequence) Clear() {
	s.Combos = s.Combos[:0]
}

// First returns the first combination, or nil if empty.
func (s *Sequence) First() *Combination {
	if len(s.Combos) == 0 {
		return nil
	}
	return &s.Combos[0]
}

// Last returns the last combination, or nil if empty.
func (s *Sequence) Last() *Combination {
	if len(s.Combos) == 0 {
		return nil
	}
	return &s.Combos[len(s.Combos)-1]
}

// Equals returns true if both sequences hold the same combinations in the
// same order.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Combos) != len(other.Combos) {
		return false
	}
	for i, c := range s.Combos {
		if !c.Equals(other.Combos[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with the given prefix.
// Comparison is combo-wise exact: key token and all four modifier flags.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Combos) > len(s.Combos) {
		return false
	}
	for i, c := range prefix.Combos {
		if !c.Equals(s.Combos[i]) {
			return false
		}
	}
	return true
}

// IsStrictPrefixOf returns true if this sequence is a strict prefix of the
// other: a combo-wise-equal prefix that is shorter than the other sequence.
func (s *Sequence) IsStrictPrefixOf(other *Sequence) bool {
	if s == nil || other == nil || s.IsEmpty() {
		return false
	}
	return s.Len() < other.Len() && other.HasPrefix(s)
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	combos := make([]Combination, len(s.Combos))
	copy(combos, s.Combos)
	return &Sequence{Combos: combos}
}

// ID returns the canonical string form: combo IDs joined by a single space.
func (s *Sequence) ID() string {
	if s == nil || len(s.Combos) == 0 {
		return ""
	}
	parts := make([]string, len(s.Combos))
	for i, c := range s.Combos {
		parts[i] = c.ID()
	}
	return strings.Join(parts, " ")
}

// String returns the canonical ID.
func (s *Sequence) String() string {
	return s.ID()
}

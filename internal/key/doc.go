// Package key provides the keyboard data model for the shortcut engine:
// raw key normalization, modifier bitmasks, combinations, sequences, the
// hotkey string grammar, and platform-aware display rendering.
//
// A Combination is one normalized key token plus a modifier set. A Sequence
// is an ordered list of Combinations; length one is a plain shortcut, length
// two or more is a chorded sequence such as "g t". The canonical string form
// of a Sequence joins combos with a single space and, within a combo, joins
// the set modifier tokens with "+" in the fixed order ctrl, meta, alt, shift,
// followed by the key token.
//
// Parsing is lenient by design: unrecognized modifier aliases are dropped and
// an empty string yields an empty Sequence, which never matches anything.
// Nothing in this package returns an error.
package key

package key

// Target is an opaque reference to the element an input event was delivered
// to. The matcher uses it only to apply the form-field policy.
type Target interface {
	// Editable reports whether the target is a form-editable element
	// (text input, textarea, or similar).
	Editable() bool
}

// RawEvent is a single raw keyboard event as delivered by the host's input
// source, before normalization.
type RawEvent struct {
	// RawKey is the key identifier as reported by the source, e.g. "k",
	// "?", "ArrowUp", "Enter", "Shift".
	RawKey string

	// Modifier flags held when the event fired.
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool

	// Target is the element the event was delivered to; nil means the
	// global target.
	Target Target
}

// Modifiers returns the event's modifier flags as a bitmask.
func (e RawEvent) Modifiers() Modifier {
	var m Modifier
	if e.Ctrl {
		m = m.With(ModCtrl)
	}
	if e.Meta {
		m = m.With(ModMeta)
	}
	if e.Alt {
		m = m.With(ModAlt)
	}
	if e.Shift {
		m = m.With(ModShift)
	}
	return m
}

// IsModifierOnly returns true if the event is a bare modifier press.
// Such events never start or extend a combination.
func (e RawEvent) IsModifierOnly() bool {
	return IsModifierKey(e.RawKey)
}

// Combination converts the event into a Combination. The second return is
// false for modifier-only events, which cannot form a combination.
func (e RawEvent) Combination() (Combination, bool) {
	if e.IsModifierOnly() || e.RawKey == "" {
		return Combination{}, false
	}
	return NewCombination(e.RawKey, e.Modifiers()), true
}

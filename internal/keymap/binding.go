package keymap

import (
	"github.com/chordkit/chordkit/internal/key"
)

// Binding maps one hotkey string to one or more action identifiers.
type Binding struct {
	// Keys is the hotkey string, e.g. "ctrl+shift+k" or "g t".
	Keys string

	// Actions are the opaque action identifiers bound to the keys.
	// Most bindings carry exactly one.
	Actions []string

	// Description documents the binding for display purposes.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a binding for the given keys and actions.
func NewBinding(keys string, actions ...string) Binding {
	return Binding{Keys: keys, Actions: actions}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ParsedBinding is a binding with its pre-parsed key sequence.
type ParsedBinding struct {
	Binding
	Sequence *key.Sequence
}

// Keymap is an ordered binding table. Iteration order is significant:
// ties resolve to the earliest binding.
type Keymap struct {
	// Name identifies the keymap.
	Name string

	// Bindings are the key-to-action mappings, in order.
	Bindings []Binding
}

// New creates an empty keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// Add appends a binding and returns the keymap for chaining.
func (k *Keymap) Add(keys string, actions ...string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, actions...))
	return k
}

// AddBinding appends a fully configured binding.
func (k *Keymap) AddBinding(b Binding) *Keymap {
	k.Bindings = append(k.Bindings, b)
	return k
}

// Parse pre-parses every binding's hotkey string, preserving table order.
// Bindings whose hotkey string parses to an empty sequence are excluded;
// they can never match and never conflict.
func (k *Keymap) Parse() []ParsedBinding {
	parsed := make([]ParsedBinding, 0, len(k.Bindings))
	for _, b := range k.Bindings {
		seq := key.ParseSequence(b.Keys)
		if seq.IsEmpty() {
			continue
		}
		parsed = append(parsed, ParsedBinding{Binding: b, Sequence: seq})
	}
	return parsed
}

// Clone returns a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	for i, b := range k.Bindings {
		actions := make([]string, len(b.Actions))
		copy(actions, b.Actions)
		clone.Bindings[i] = Binding{
			Keys:        b.Keys,
			Actions:     actions,
			Description: b.Description,
			Category:    b.Category,
		}
	}
	return clone
}

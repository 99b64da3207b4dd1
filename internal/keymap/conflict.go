package keymap

import (
	"sort"

	"github.com/chordkit/chordkit/internal/key"
)

// ConflictType classifies a binding conflict.
type ConflictType string

const (
	// ConflictDuplicate means two or more actions share the exact same
	// key string.
	ConflictDuplicate ConflictType = "duplicate"

	// ConflictPrefix means one binding's sequence is a strict prefix of
	// another's, so the shorter one shadows the longer one.
	ConflictPrefix ConflictType = "prefix"
)

// Conflict describes one key string's participation in a conflict.
type Conflict struct {
	// Key is the hotkey string of the conflicting binding.
	Key string

	// Actions are the action ids bound to Key.
	Actions []string

	// Type is the conflict kind.
	Type ConflictType

	// Partners are the other key strings involved. For a prefix conflict
	// on the shorter key these are the keys it shadows; on the longer key,
	// the keys that shadow it. Empty for duplicates, where the conflict
	// is internal to Key.
	Partners []string
}

// Report is the result of static conflict analysis over a binding table.
// Conflicts are informational, never errors.
type Report struct {
	byKey map[string][]Conflict
}

// HasConflicts returns true if any conflict was found.
func (r *Report) HasConflicts() bool {
	return len(r.byKey) > 0
}

// ByKey returns the conflicts grouped by key string.
func (r *Report) ByKey() map[string][]Conflict {
	out := make(map[string][]Conflict, len(r.byKey))
	for k, v := range r.byKey {
		out[k] = append([]Conflict(nil), v...)
	}
	return out
}

// List returns all conflicts flattened and deterministically sorted by key,
// then type.
func (r *Report) List() []Conflict {
	list := make([]Conflict, 0, len(r.byKey))
	for _, cs := range r.byKey {
		list = append(list, cs...)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Key != list[j].Key {
			return list[i].Key < list[j].Key
		}
		return list[i].Type < list[j].Type
	})
	return list
}

func (r *Report) add(c Conflict) {
	r.byKey[c.Key] = append(r.byKey[c.Key], c)
}

// Analyze statically inspects a binding table for duplicate and prefix
// conflicts. Bindings whose hotkey string parses empty are excluded.
//
// A duplicate means the same key string resolves to more than one distinct
// action. Entries binding the same action to the same key string are folded
// together and not reported: re-stating an existing binding is harmless
// repetition, not an ambiguity the user needs to resolve.
//
// Duplicate detection is a single grouping pass over key strings; prefix
// detection compares parsed sequences pairwise with exact modifier equality
// (no shift leniency). Binding tables are small, so the quadratic pass is
// fine.
func Analyze(km *Keymap) *Report {
	report := &Report{byKey: make(map[string][]Conflict)}
	if km == nil {
		return report
	}

	parsed := km.Parse()

	// Group actions by exact key string.
	actionsByKey := make(map[string][]string)
	seqByKey := make(map[string]*key.Sequence)
	keyOrder := make([]string, 0, len(parsed))
	for _, pb := range parsed {
		if _, seen := seqByKey[pb.Keys]; !seen {
			keyOrder = append(keyOrder, pb.Keys)
			seqByKey[pb.Keys] = pb.Sequence
		}
		for _, action := range pb.Actions {
			if !containsString(actionsByKey[pb.Keys], action) {
				actionsByKey[pb.Keys] = append(actionsByKey[pb.Keys], action)
			}
		}
	}

	for _, k := range keyOrder {
		if actions := actionsByKey[k]; len(actions) > 1 {
			report.add(Conflict{
				Key:     k,
				Actions: actions,
				Type:    ConflictDuplicate,
			})
		}
	}

	// Pairwise prefix scan over distinct key strings.
	prefixPartners := make(map[string][]string)
	for i := 0; i < len(keyOrder); i++ {
		for j := i + 1; j < len(keyOrder); j++ {
			a, b := keyOrder[i], keyOrder[j]
			sa, sb := seqByKey[a], seqByKey[b]
			if sa.IsStrictPrefixOf(sb) || sb.IsStrictPrefixOf(sa) {
				prefixPartners[a] = append(prefixPartners[a], b)
				prefixPartners[b] = append(prefixPartners[b], a)
			}
		}
	}

	for _, k := range keyOrder {
		if partners := prefixPartners[k]; len(partners) > 0 {
			report.add(Conflict{
				Key:      k,
				Actions:  actionsByKey[k],
				Type:     ConflictPrefix,
				Partners: partners,
			})
		}
	}

	return report
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

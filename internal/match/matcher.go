// Package match implements event-to-action matching: single combinations,
// multi-key sequences with an inter-key timeout, and dispatch against an
// ordered binding table.
package match

import (
	"sync"
	"time"

	"github.com/chordkit/chordkit/internal/key"
	"github.com/chordkit/chordkit/internal/keymap"
)

// DefaultSequenceTimeout is the maximum idle time between combos of a
// chorded sequence before the pending keys are discarded.
const DefaultSequenceTimeout = 1000 * time.Millisecond

// Options configures the matcher.
type Options struct {
	// Enabled toggles matching entirely (default true).
	Enabled bool

	// PreventDefault advises the host to suppress the default behavior of
	// consumed events (default true).
	PreventDefault bool

	// StopPropagation advises the host to stop propagation of consumed
	// events (default true).
	StopPropagation bool

	// EnableOnFormTags matches events targeted at form-editable elements
	// (default false).
	EnableOnFormTags bool

	// SequenceTimeout is the inter-key timeout for chorded sequences.
	SequenceTimeout time.Duration
}

// DefaultOptions returns the default matcher configuration.
func DefaultOptions() Options {
	return Options{
		Enabled:         true,
		PreventDefault:  true,
		StopPropagation: true,
		SequenceTimeout: DefaultSequenceTimeout,
	}
}

// Handler executes a dispatched action.
type Handler func(action string, seq *key.Sequence)

// Status classifies the outcome of handling one key event.
type Status uint8

const (
	// StatusIgnored means the event did not qualify (disabled matcher,
	// modifier-only press, or excluded form target).
	StatusIgnored Status = iota

	// StatusFired means an action was dispatched.
	StatusFired

	// StatusPending means the pending keys are a strict prefix of at
	// least one binding; the matcher is waiting for more keys.
	StatusPending

	// StatusNoMatch means the pending sequence went dead and was cleared.
	StatusNoMatch
)

// Result reports what one key event did.
type Result struct {
	Status Status

	// Action is the dispatched action id when Status is StatusFired.
	Action string

	// Sequence is the matched or pending sequence, when one exists.
	Sequence *key.Sequence

	// Host advice for consumed events.
	PreventDefault  bool
	StopPropagation bool
}

// Consumed reports whether the matcher took the event for itself.
func (r Result) Consumed() bool {
	return r.Status == StatusFired || r.Status == StatusPending
}

// Matcher matches a stream of key events against a binding table. All
// methods are safe for concurrent use; matching itself runs synchronously
// inside HandleKey.
type Matcher struct {
	mu sync.Mutex

	opts     Options
	bindings []keymap.ParsedBinding
	handlers map[string]Handler

	// pending holds the qualifying raw events of the live sequence. Raw
	// events are kept, not just combinations, because shift leniency
	// depends on each event's raw key.
	pending []key.RawEvent

	// timer is the single authoritative timeout handle. Every transition
	// that would invalidate it stops and replaces it first; gen guards
	// against a stale fire that lost the race.
	timer *time.Timer
	gen   uint64

	// OnDispatch, when set, observes every fired action.
	OnDispatch func(action string, seq *key.Sequence)

	// OnTimeout, when set, observes expired sequences.
	OnTimeout func()
}

// NewMatcher creates a matcher over the given keymap.
func NewMatcher(km *keymap.Keymap, opts Options) *Matcher {
	if opts.SequenceTimeout <= 0 {
		opts.SequenceTimeout = DefaultSequenceTimeout
	}
	m := &Matcher{
		opts:     opts,
		handlers: make(map[string]Handler),
	}
	if km != nil {
		m.bindings = km.Parse()
	}
	return m
}

// SetKeymap replaces the binding table. The table is reparsed, never
// mutated in place, and any live sequence is discarded.
func (m *Matcher) SetKeymap(km *keymap.Keymap) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearPendingLocked()
	if km == nil {
		m.bindings = nil
		return
	}
	m.bindings = km.Parse()
}

// SetEnabled toggles matching.
func (m *Matcher) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts.Enabled = enabled
	if !enabled {
		m.clearPendingLocked()
	}
}

// RegisterHandler binds an executable handler to an action id.
func (m *Matcher) RegisterHandler(action string, fn Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[action] = fn
}

// UnregisterHandler removes the handler for an action id.
func (m *Matcher) UnregisterHandler(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handlers, action)
}

// PendingKeys returns the live pending sequence, or an empty sequence when
// nothing is pending.
func (m *Matcher) PendingKeys() *key.Sequence {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingSequenceLocked()
}

// Matches reports whether a single raw event matches a bound combination.
//
// All four modifier flags must match exactly, with one exception: when the
// event's raw key is a shift-required character and the bound combination
// does not require shift, the shift flag is ignored, because typing that
// character inherently holds shift. A combination that does require shift
// still demands the event's shift flag. Key tokens compare exactly after
// normalization.
func Matches(ev key.RawEvent, combo key.Combination) bool {
	if key.Normalize(ev.RawKey) != combo.Key {
		return false
	}
	if ev.Ctrl != combo.Mods.Has(key.ModCtrl) {
		return false
	}
	if ev.Alt != combo.Mods.Has(key.ModAlt) {
		return false
	}
	if ev.Meta != combo.Mods.Has(key.ModMeta) {
		return false
	}
	if combo.Mods.Has(key.ModShift) {
		return ev.Shift
	}
	if ev.Shift && !key.IsShiftRequired(ev.RawKey) {
		return false
	}
	return true
}

// HandleKey processes one keydown event against the binding table.
//
// A qualifying event extends the pending sequence. An exact match fires the
// first binding in table order whose action has a registered handler (one
// action per event, even when bindings are textually identical), then
// clears the pending keys. A strict-prefix match replaces the timeout and
// waits. Anything else clears the pending keys with nothing fired.
func (m *Matcher) HandleKey(ev key.RawEvent) Result {
	m.mu.Lock()

	if !m.opts.Enabled {
		m.mu.Unlock()
		return Result{Status: StatusIgnored}
	}
	if ev.IsModifierOnly() || ev.RawKey == "" {
		m.mu.Unlock()
		return Result{Status: StatusIgnored}
	}
	if ev.Target != nil && ev.Target.Editable() && !m.opts.EnableOnFormTags {
		m.mu.Unlock()
		return Result{Status: StatusIgnored}
	}

	// Any transition invalidates the outstanding timer; clear it before
	// touching anything else.
	m.stopTimerLocked()

	m.pending = append(m.pending, ev)

	exact, completions := m.scanLocked()

	if exact != nil {
		seq := m.pendingSequenceLocked()
		action, fn := m.resolveActionLocked(exact)
		onDispatch := m.OnDispatch
		m.clearPendingLocked()
		m.mu.Unlock()

		// Callbacks run outside the lock so a handler may re-enter the
		// matcher, e.g. to install a freshly recorded binding.
		if fn != nil {
			fn(action, seq)
		}
		if onDispatch != nil {
			onDispatch(action, seq)
		}
		return Result{
			Status:          StatusFired,
			Action:          action,
			Sequence:        seq,
			PreventDefault:  m.opts.PreventDefault,
			StopPropagation: m.opts.StopPropagation,
		}
	}

	if completions {
		m.armTimerLocked()
		res := Result{
			Status:          StatusPending,
			Sequence:        m.pendingSequenceLocked(),
			PreventDefault:  m.opts.PreventDefault,
			StopPropagation: m.opts.StopPropagation,
		}
		m.mu.Unlock()
		return res
	}

	// Dead sequence: no exact match, no completion.
	m.clearPendingLocked()
	m.mu.Unlock()
	return Result{Status: StatusNoMatch}
}

// scanLocked walks the binding table once, returning the first binding whose
// sequence exactly matches the pending events and whose action can fire,
// plus whether any binding has the pending events as a strict prefix.
func (m *Matcher) scanLocked() (*keymap.ParsedBinding, bool) {
	var exact *keymap.ParsedBinding
	var fallback *keymap.ParsedBinding
	completions := false

	for i := range m.bindings {
		pb := &m.bindings[i]
		n := pb.Sequence.Len()
		switch {
		case n == len(m.pending):
			if exact != nil || !m.pendingMatchesLocked(pb.Sequence) {
				continue
			}
			if m.hasHandlerLocked(pb) {
				exact = pb
			} else if fallback == nil {
				fallback = pb
			}
		case n > len(m.pending):
			if !completions && m.pendingPrefixMatchesLocked(pb.Sequence) {
				completions = true
			}
		}
	}

	if exact == nil {
		exact = fallback
	}
	return exact, completions
}

func (m *Matcher) pendingMatchesLocked(seq *key.Sequence) bool {
	for i, ev := range m.pending {
		if !Matches(ev, seq.Combos[i]) {
			return false
		}
	}
	return true
}

func (m *Matcher) pendingPrefixMatchesLocked(seq *key.Sequence) bool {
	if seq.Len() <= len(m.pending) {
		return false
	}
	return m.pendingMatchesLocked(&key.Sequence{Combos: seq.Combos[:len(m.pending)]})
}

func (m *Matcher) hasHandlerLocked(pb *keymap.ParsedBinding) bool {
	for _, action := range pb.Actions {
		if _, ok := m.handlers[action]; ok {
			return true
		}
	}
	return false
}

// resolveActionLocked picks the binding's first action that has a
// registered handler, or reports the first action id with no handler when
// none do. The caller invokes the handler after releasing the lock.
func (m *Matcher) resolveActionLocked(pb *keymap.ParsedBinding) (string, Handler) {
	for _, a := range pb.Actions {
		if h, ok := m.handlers[a]; ok {
			return a, h
		}
	}
	if len(pb.Actions) > 0 {
		return pb.Actions[0], nil
	}
	return "", nil
}

func (m *Matcher) pendingSequenceLocked() *key.Sequence {
	seq := key.NewSequence()
	for _, ev := range m.pending {
		if combo, ok := ev.Combination(); ok {
			seq.Add(combo)
		}
	}
	return seq
}

// armTimerLocked replaces the sequence timeout. The generation guard keeps
// a stale timer that already lost the race from clearing a newer sequence.
func (m *Matcher) armTimerLocked() {
	gen := m.gen
	m.timer = time.AfterFunc(m.opts.SequenceTimeout, func() {
		m.expire(gen)
	})
}

func (m *Matcher) expire(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.clearPendingLocked()
	onTimeout := m.OnTimeout
	m.mu.Unlock()

	if onTimeout != nil {
		onTimeout()
	}
}

func (m *Matcher) stopTimerLocked() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Matcher) clearPendingLocked() {
	m.stopTimerLocked()
	m.pending = m.pending[:0]
}

// Package record implements live key capture for rebinding UIs: a small
// state machine that turns raw keydown/keyup traffic into a finished
// Sequence, with Enter/Escape handling and an inter-key timeout.
package record

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chordkit/chordkit/internal/key"
)

// State is the recorder's lifecycle state.
type State uint8

const (
	// StateIdle means no capture session is active.
	StateIdle State = iota

	// StateRecording means key events are being captured.
	StateRecording
)

// String returns the state name.
func (s State) String() string {
	if s == StateRecording {
		return "recording"
	}
	return "idle"
}

// CaptureMode selects what a session captures.
type CaptureMode uint8

const (
	// CaptureSingle finalizes as soon as one combination completes.
	CaptureSingle CaptureMode = iota

	// CaptureSequence keeps collecting combinations until Enter, the
	// inter-key timeout, or an explicit stop.
	CaptureSequence
)

// DefaultSequenceTimeout is the default inter-key timeout between combos.
const DefaultSequenceTimeout = 1000 * time.Millisecond

// Options configures a recorder.
type Options struct {
	// Mode selects single-combination or sequence capture.
	Mode CaptureMode

	// SequenceTimeout is the inter-key timeout in sequence mode.
	SequenceTimeout time.Duration

	// PreventDefault and StopPropagation advise the host to suppress
	// consumed events (default true). While recording, the recorder must
	// be given the event before any other consumer.
	PreventDefault  bool
	StopPropagation bool
}

// DefaultOptions returns the default recorder configuration.
func DefaultOptions() Options {
	return Options{
		Mode:            CaptureSequence,
		SequenceTimeout: DefaultSequenceTimeout,
		PreventDefault:  true,
		StopPropagation: true,
	}
}

// Recorder captures live key presses into a Sequence. Observers are plain
// fields the host may reassign at any time; they are read at transition
// time, so the latest value always wins.
type Recorder struct {
	mu sync.Mutex

	opts  Options
	state State

	// sessionID identifies the active capture session. Stale timer
	// callbacks check it so nothing from a torn-down session can fire.
	sessionID string

	// held tracks currently-pressed raw keys in press order. With two
	// non-modifier keys down at once the earlier press stays the
	// provisional main key; simultaneous chords are not representable.
	held []string

	pending     *key.Sequence
	provisional key.Combination
	timer       *time.Timer

	// OnCapture receives the finished sequence and its display form.
	OnCapture func(seq *key.Sequence, display key.Display)

	// OnCancel is notified when a session is cancelled with nothing
	// captured.
	OnCancel func()

	// OnPreview observes the provisional "currently held" combination.
	// A zero Combination means the preview cleared.
	OnPreview func(combo key.Combination)
}

// NewRecorder creates an idle recorder.
func NewRecorder(opts Options) *Recorder {
	if opts.SequenceTimeout <= 0 {
		opts.SequenceTimeout = DefaultSequenceTimeout
	}
	return &Recorder{
		opts:    opts,
		pending: key.NewSequence(),
	}
}

// State returns the current state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Active reports whether a capture session is running.
func (r *Recorder) Active() bool {
	return r.State() == StateRecording
}

// SessionID returns the active session's id, or "" when idle.
func (r *Recorder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRecording {
		return ""
	}
	return r.sessionID
}

// Pending returns a copy of the accumulated pending sequence.
func (r *Recorder) Pending() *key.Sequence {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Clone()
}

// Start begins a capture session. Any active session is torn down first:
// its timer is cleared and none of its callbacks may fire afterwards.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()
	r.sessionID = uuid.NewString()
	r.state = StateRecording
}

// Cancel aborts the active session, discards all pending state, and
// notifies the cancellation observer. Cancellation is immediate and total:
// no later callback for the session may fire.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return
	}
	r.resetLocked()
	onCancel := r.OnCancel
	r.mu.Unlock()

	if onCancel != nil {
		onCancel()
	}
}

// HandleKeyDown processes a keydown while recording. The return reports
// whether the recorder consumed the event; while recording, every handled
// event is consumed ahead of any other input consumer.
func (r *Recorder) HandleKeyDown(ev key.RawEvent) bool {
	r.mu.Lock()

	if r.state != StateRecording {
		r.mu.Unlock()
		return false
	}

	// Enter finalizes a non-empty pending sequence; the key itself is
	// consumed and never captured.
	if isEnterKey(ev.RawKey) && r.opts.Mode == CaptureSequence {
		if !r.pending.IsEmpty() {
			r.finalizeLocked() // unlocks
			return true
		}
		r.mu.Unlock()
		return true
	}

	if isEscapeKey(ev.RawKey) {
		r.resetLocked()
		onCancel := r.OnCancel
		r.mu.Unlock()
		if onCancel != nil {
			onCancel()
		}
		return true
	}

	// A new key press invalidates the outstanding inter-key timer; clear
	// it before anything else so it cannot fire mid-combination.
	r.stopTimerLocked()

	r.holdLocked(ev.RawKey)

	// Provisional combination: current modifier flags plus the first
	// non-modifier key among the held keys, in press order.
	r.provisional = key.Combination{}
	for _, raw := range r.held {
		if !key.IsModifierKey(raw) {
			r.provisional = key.NewCombination(raw, ev.Modifiers())
			break
		}
	}

	preview := r.OnPreview
	combo := r.provisional
	r.mu.Unlock()

	if preview != nil {
		preview(combo)
	}
	return true
}

// HandleKeyUp processes a keyup while recording. A combination completes
// when the held-key set empties, or when the platform super/meta key is
// released after a non-modifier key was captured: releasing it can swallow
// the remaining keyup events on some platforms, so it counts as an
// implicit "all released" signal.
func (r *Recorder) HandleKeyUp(ev key.RawEvent) bool {
	r.mu.Lock()

	if r.state != StateRecording {
		r.mu.Unlock()
		return false
	}

	r.releaseLocked(ev.RawKey)

	complete := len(r.held) == 0 ||
		(isSuperKey(ev.RawKey) && !r.provisional.IsZero())
	if !complete {
		r.mu.Unlock()
		return true
	}

	if r.provisional.IsZero() {
		// Only modifiers were held; nothing to capture.
		r.held = r.held[:0]
		r.mu.Unlock()
		return true
	}

	r.pending.Add(r.provisional)
	r.provisional = key.Combination{}
	r.held = r.held[:0]

	if r.opts.Mode == CaptureSingle {
		r.finalizeLocked() // unlocks
		return true
	}

	r.armTimerLocked()
	preview := r.OnPreview
	r.mu.Unlock()

	if preview != nil {
		preview(key.Combination{})
	}
	return true
}

// Finalize ends the session with whatever has been captured, as if the
// inter-key timer had fired. It is a no-op when idle or when nothing is
// pending.
func (r *Recorder) Finalize() {
	r.mu.Lock()
	if r.state != StateRecording || r.pending.IsEmpty() {
		r.mu.Unlock()
		return
	}
	r.finalizeLocked()
}

// finalizeLocked completes the session. Clearing the timer is the first
// step so no stale callback can outlive the transition. Unlocks r.mu.
func (r *Recorder) finalizeLocked() {
	r.stopTimerLocked()

	seq := r.pending.Clone()
	display := key.Describe(seq)

	r.resetLocked()
	onCapture := r.OnCapture
	r.mu.Unlock()

	if onCapture != nil {
		onCapture(seq, display)
	}
}

// armTimerLocked replaces the inter-key timer for the active session.
func (r *Recorder) armTimerLocked() {
	r.stopTimerLocked()
	session := r.sessionID
	r.timer = time.AfterFunc(r.opts.SequenceTimeout, func() {
		r.expire(session)
	})
}

// expire runs when the inter-key timer fires: finalize with whatever is
// pending, or do nothing when the session is gone or nothing was captured.
func (r *Recorder) expire(session string) {
	r.mu.Lock()
	if r.state != StateRecording || r.sessionID != session {
		r.mu.Unlock()
		return
	}
	if r.pending.IsEmpty() {
		r.mu.Unlock()
		return
	}
	r.finalizeLocked()
}

func (r *Recorder) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// resetLocked clears all session state. The timer goes first; clearing it
// must precede any transition that invalidates it.
func (r *Recorder) resetLocked() {
	r.stopTimerLocked()
	r.sessionID = ""
	r.state = StateIdle
	r.held = r.held[:0]
	r.pending = key.NewSequence()
	r.provisional = key.Combination{}
}

func (r *Recorder) holdLocked(raw string) {
	for _, h := range r.held {
		if h == raw {
			return
		}
	}
	r.held = append(r.held, raw)
}

func (r *Recorder) releaseLocked(raw string) {
	for i, h := range r.held {
		if h == raw {
			r.held = append(r.held[:i], r.held[i+1:]...)
			return
		}
	}
}

func isEnterKey(raw string) bool {
	return strings.EqualFold(raw, "enter")
}

func isEscapeKey(raw string) bool {
	return strings.EqualFold(raw, "escape")
}

// isSuperKey reports the platform super/meta key.
func isSuperKey(raw string) bool {
	return strings.EqualFold(raw, "meta")
}

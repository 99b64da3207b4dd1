// Package engine is the front door of the shortcut engine. It owns one
// matcher and one recorder over a shared input stream and enforces the
// priority contract between them: while a recording session is active the
// recorder captures every key event before the matcher sees it.
package engine

import (
	"time"

	"github.com/chordkit/chordkit/internal/key"
	"github.com/chordkit/chordkit/internal/keymap"
	"github.com/chordkit/chordkit/internal/match"
	"github.com/chordkit/chordkit/internal/record"
)

// Config configures the engine.
type Config struct {
	// Enabled toggles dispatch (default true). Recording is unaffected.
	Enabled bool

	// PreventDefault and StopPropagation advise the host about consumed
	// events (default true).
	PreventDefault  bool
	StopPropagation bool

	// EnableOnFormTags lets the matcher see events targeted at
	// form-editable elements (default false).
	EnableOnFormTags bool

	// SequenceTimeout is the inter-key timeout for both matching and
	// recording. Default 1000ms.
	SequenceTimeout time.Duration
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		PreventDefault:  true,
		StopPropagation: true,
		SequenceTimeout: match.DefaultSequenceTimeout,
	}
}

// Engine coordinates matching and recording over one input stream.
type Engine struct {
	config   Config
	matcher  *match.Matcher
	recorder *record.Recorder
	hooks    *HookManager
	metrics  *Metrics
}

// New creates an engine over the given keymap.
func New(km *keymap.Keymap, config Config) *Engine {
	if config.SequenceTimeout <= 0 {
		config.SequenceTimeout = match.DefaultSequenceTimeout
	}

	matcher := match.NewMatcher(km, match.Options{
		Enabled:          config.Enabled,
		PreventDefault:   config.PreventDefault,
		StopPropagation:  config.StopPropagation,
		EnableOnFormTags: config.EnableOnFormTags,
		SequenceTimeout:  config.SequenceTimeout,
	})

	recOpts := record.DefaultOptions()
	recOpts.SequenceTimeout = config.SequenceTimeout
	recOpts.PreventDefault = config.PreventDefault
	recOpts.StopPropagation = config.StopPropagation

	e := &Engine{
		config:   config,
		matcher:  matcher,
		recorder: record.NewRecorder(recOpts),
		hooks:    NewHookManager(),
		metrics:  NewMetrics(),
	}
	matcher.OnTimeout = e.metrics.recordTimeout
	return e
}

// Matcher returns the engine's matcher.
func (e *Engine) Matcher() *match.Matcher {
	return e.matcher
}

// Recorder returns the engine's recorder.
func (e *Engine) Recorder() *record.Recorder {
	return e.recorder
}

// Metrics returns the engine's metrics.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// SetKeymap replaces the binding table behind the matcher.
func (e *Engine) SetKeymap(km *keymap.Keymap) {
	e.matcher.SetKeymap(km)
}

// AddHook registers an input hook.
func (e *Engine) AddHook(hook Hook) HookID {
	return e.hooks.Register(hook)
}

// RemoveHook unregisters an input hook.
func (e *Engine) RemoveHook(id HookID) {
	e.hooks.Unregister(id)
}

// StartRecording begins a capture session. Any active session is torn down
// first; only one session ever runs at a time.
func (e *Engine) StartRecording() {
	e.metrics.recordSessionStart()
	e.recorder.Start()
}

// CancelRecording aborts the active capture session, if any.
func (e *Engine) CancelRecording() {
	e.recorder.Cancel()
}

// HandleKeyDown routes one keydown through hooks, then the recorder (which
// has priority while active), then the matcher.
func (e *Engine) HandleKeyDown(ev key.RawEvent) match.Result {
	e.metrics.recordKeyEvent()

	if e.hooks.preKeyEvent(ev) {
		return match.Result{Status: match.StatusIgnored}
	}

	// Recorder first: while a session is active it must intercept raw
	// presses ahead of any other consumer.
	if e.recorder.Active() {
		e.recorder.HandleKeyDown(ev)
		res := match.Result{
			Status:          match.StatusIgnored,
			PreventDefault:  e.config.PreventDefault,
			StopPropagation: e.config.StopPropagation,
		}
		e.hooks.postKeyEvent(ev, res)
		return res
	}

	res := e.matcher.HandleKey(ev)
	if res.Status == match.StatusFired {
		e.metrics.recordDispatch()
	}
	e.hooks.postKeyEvent(ev, res)
	return res
}

// HandleKeyUp routes one keyup. Only the recorder observes keyups; the
// matcher operates on keydowns alone.
func (e *Engine) HandleKeyUp(ev key.RawEvent) bool {
	return e.recorder.HandleKeyUp(ev)
}

package engine

import (
	"sort"
	"sync"

	"github.com/chordkit/chordkit/internal/key"
	"github.com/chordkit/chordkit/internal/match"
)

// HookPriority defines the execution order for hooks.
// Lower values execute first.
type HookPriority int

const (
	// HookPriorityHigh runs early in the hook chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the hook chain.
	HookPriorityLow HookPriority = 100
)

// HookID uniquely identifies a registered hook.
type HookID uint64

// Hook observes key events flowing through the engine.
type Hook interface {
	// PreKeyEvent runs before dispatch. Returning true consumes the
	// event: neither the recorder nor the matcher will see it.
	PreKeyEvent(ev key.RawEvent) bool

	// PostKeyEvent runs after dispatch with the outcome.
	PostKeyEvent(ev key.RawEvent, res match.Result)
}

// HookRegistration holds metadata about a registered hook.
type HookRegistration struct {
	ID       HookID
	Priority HookPriority
	Hook     Hook
}

// HookManager manages input hooks with priority ordering.
type HookManager struct {
	mu     sync.Mutex
	hooks  []HookRegistration
	nextID HookID
	sorted bool
}

// NewHookManager creates a new hook manager.
func NewHookManager() *HookManager {
	return &HookManager{}
}

// Register adds a hook with default priority.
func (m *HookManager) Register(hook Hook) HookID {
	return m.RegisterWithPriority(hook, HookPriorityNormal)
}

// RegisterWithPriority adds a hook with the given priority.
func (m *HookManager) RegisterWithPriority(hook Hook, priority HookPriority) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.hooks = append(m.hooks, HookRegistration{
		ID:       m.nextID,
		Priority: priority,
		Hook:     hook,
	})
	m.sorted = false
	return m.nextID
}

// Unregister removes a hook by ID.
func (m *HookManager) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.hooks {
		if m.hooks[i].ID == id {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered hooks.
func (m *HookManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hooks)
}

// snapshot returns the hooks in priority order for iteration outside the
// lock, so a hook may register or unregister others without deadlocking.
func (m *HookManager) snapshot() []Hook {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.hooks) == 0 {
		return nil
	}
	if !m.sorted {
		sort.SliceStable(m.hooks, func(i, j int) bool {
			return m.hooks[i].Priority < m.hooks[j].Priority
		})
		m.sorted = true
	}

	hooks := make([]Hook, len(m.hooks))
	for i := range m.hooks {
		hooks[i] = m.hooks[i].Hook
	}
	return hooks
}

// preKeyEvent runs all PreKeyEvent hooks in priority order.
// Returns true if any hook consumed the event.
func (m *HookManager) preKeyEvent(ev key.RawEvent) bool {
	for _, hook := range m.snapshot() {
		if hook.PreKeyEvent(ev) {
			return true
		}
	}
	return false
}

// postKeyEvent runs all PostKeyEvent hooks in priority order.
func (m *HookManager) postKeyEvent(ev key.RawEvent, res match.Result) {
	for _, hook := range m.snapshot() {
		hook.PostKeyEvent(ev, res)
	}
}

// BaseHook provides a no-op Hook implementation. Embed it in custom hooks
// to only implement the methods you need.
type BaseHook struct{}

// PreKeyEvent is a no-op that does not consume events.
func (BaseHook) PreKeyEvent(key.RawEvent) bool { return false }

// PostKeyEvent is a no-op.
func (BaseHook) PostKeyEvent(key.RawEvent, match.Result) {}

// FuncHook wraps functions into a Hook implementation.
type FuncHook struct {
	PreKeyEventFunc  func(key.RawEvent) bool
	PostKeyEventFunc func(key.RawEvent, match.Result)
}

// PreKeyEvent calls PreKeyEventFunc if set.
func (h FuncHook) PreKeyEvent(ev key.RawEvent) bool {
	if h.PreKeyEventFunc != nil {
		return h.PreKeyEventFunc(ev)
	}
	return false
}

// PostKeyEvent calls PostKeyEventFunc if set.
func (h FuncHook) PostKeyEvent(ev key.RawEvent, res match.Result) {
	if h.PostKeyEventFunc != nil {
		h.PostKeyEventFunc(ev, res)
	}
}

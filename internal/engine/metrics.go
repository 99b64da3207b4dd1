package engine

import "sync/atomic"

// Metrics tracks engine activity with atomic counters.
type Metrics struct {
	keyEvents         atomic.Uint64
	dispatches        atomic.Uint64
	sequenceTimeouts  atomic.Uint64
	recordingSessions atomic.Uint64
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	KeyEvents         uint64
	Dispatches        uint64
	SequenceTimeouts  uint64
	RecordingSessions uint64
}

// NewMetrics creates a zeroed metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		KeyEvents:         m.keyEvents.Load(),
		Dispatches:        m.dispatches.Load(),
		SequenceTimeouts:  m.sequenceTimeouts.Load(),
		RecordingSessions: m.recordingSessions.Load(),
	}
}

func (m *Metrics) recordKeyEvent() {
	m.keyEvents.Add(1)
}

func (m *Metrics) recordDispatch() {
	m.dispatches.Add(1)
}

func (m *Metrics) recordTimeout() {
	m.sequenceTimeouts.Add(1)
}

func (m *Metrics) recordSessionStart() {
	m.recordingSessions.Add(1)
}

package qgame

import (
	"sync"
	"time"
)

/*
Metrics counts what a world has been asked to do. The counters are only
readable through ExportMetrics, which takes the lock.
*/
type Metrics struct {
	mu sync.RWMutex

	objects      int
	operations   int64
	frames       int64
	peeks        int64
	samples      int64
	pops         int64
	undos        int64
	stateSize    int
	lastApplied  time.Time
	totalReplays time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{stateSize: 1}
}

func (m *Metrics) recordFrame(ops int, size int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frames++
	m.operations += int64(ops)
	m.stateSize = size
	m.lastApplied = time.Now()
}

func (m *Metrics) recordObject(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects++
	m.stateSize = size
}

func (m *Metrics) recordPeek(samples int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.peeks++
	m.samples += int64(samples)
}

func (m *Metrics) recordPop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pops++
}

func (m *Metrics) recordUndo(replay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.undos++
	m.totalReplays += replay
}

// ExportMetrics returns a snapshot suitable for printing or logging.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"objects":      m.objects,
		"operations":   m.operations,
		"frames":       m.frames,
		"peeks":        m.peeks,
		"samples":      m.samples,
		"pops":         m.pops,
		"undos":        m.undos,
		"state_size":   m.stateSize,
		"replay_ms":    m.totalReplays.Milliseconds(),
		"last_applied": m.lastApplied,
	}
}

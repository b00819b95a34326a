package events

import (
	"reflect"
	"sync"
)

// HeartbeatMonitor tracks the last observed heartbeat payload so
// listeners can ignore heartbeats that carry no state change.
type HeartbeatMonitor struct {
	mu     sync.Mutex
	latest any
}

// Update records value and reports whether it differs from the
// previously observed payload. A nil value never counts as a change.
func (m *HeartbeatMonitor) Update(value any) bool {
	if value == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if reflect.DeepEqual(value, m.latest) {
		return false
	}
	m.latest = value
	return true
}

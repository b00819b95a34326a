package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeartbeatMonitorUpdate(t *testing.T) {
	t.Run("first payload is a change", func(t *testing.T) {
		var m HeartbeatMonitor
		assert.True(t, m.Update("gen-1"))
	})

	t.Run("repeated payload is not a change", func(t *testing.T) {
		var m HeartbeatMonitor
		assert.True(t, m.Update("gen-1"))
		assert.False(t, m.Update("gen-1"))
		assert.False(t, m.Update("gen-1"))
	})

	t.Run("changed payload triggers again", func(t *testing.T) {
		var m HeartbeatMonitor
		assert.True(t, m.Update("gen-1"))
		assert.True(t, m.Update("gen-2"))
		assert.False(t, m.Update("gen-2"))
	})

	t.Run("nil payload never counts as a change", func(t *testing.T) {
		var m HeartbeatMonitor
		assert.False(t, m.Update(nil))
		assert.True(t, m.Update("gen-1"))
		assert.False(t, m.Update(nil))
	})

	t.Run("compares payloads deeply", func(t *testing.T) {
		var m HeartbeatMonitor
		assert.True(t, m.Update(map[string]int{"a": 1}))
		assert.False(t, m.Update(map[string]int{"a": 1}))
		assert.True(t, m.Update(map[string]int{"a": 2}))
	})
}

package events

import log "github.com/sirupsen/logrus"

// DirtyMarker is the capability the listener drives: marking the
// dispatch index stale. dispatch.Index implements it.
type DirtyMarker interface {
	SetDirty(bool)
}

// RefreshListener reacts to configuration and fleet events by marking
// the dispatch index dirty. Heartbeat events only trigger when their
// payload changed since the last observed one.
type RefreshListener struct {
	marker  DirtyMarker
	monitor HeartbeatMonitor
}

// NewRefreshListener creates a listener driving marker.
func NewRefreshListener(marker DirtyMarker) *RefreshListener {
	return &RefreshListener{marker: marker}
}

// Bind subscribes the listener to bus.
func (l *RefreshListener) Bind(bus *Bus) {
	bus.Subscribe(l.Handle)
}

// Handle processes a single event.
func (l *RefreshListener) Handle(e Event) {
	switch e := e.(type) {
	case ContextRefreshed, RoutesRefreshed, InstanceRegistered:
		l.reset()
	case Heartbeat:
		l.resetIfNeeded(e.Value)
	case ParentHeartbeat:
		l.resetIfNeeded(e.Value)
	default:
		log.Debugf("events: ignoring event %T", e)
	}
}

func (l *RefreshListener) resetIfNeeded(value any) {
	if l.monitor.Update(value) {
		l.reset()
	}
}

func (l *RefreshListener) reset() {
	l.marker.SetDirty(true)
}

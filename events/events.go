package events

// Event is the closed set of notifications the gateway core reacts to.
type Event interface {
	event()
}

// ContextRefreshed signals that the hosting process reloaded its full
// configuration context.
type ContextRefreshed struct{}

// RoutesRefreshed is the explicit signal that the declared routes
// changed.
type RoutesRefreshed struct{}

// InstanceRegistered signals a fleet membership change: a service
// instance joined or re-registered.
type InstanceRegistered struct {
	// InstanceID identifies the registered instance, when known.
	InstanceID string
}

// Heartbeat is a periodic service registry heartbeat. Value is the
// registry's state payload; listeners only react when it differs from
// the previously observed one.
type Heartbeat struct {
	Value any
}

// ParentHeartbeat is a heartbeat relayed from a parent registry
// context. It is gated like Heartbeat.
type ParentHeartbeat struct {
	Value any
}

func (ContextRefreshed) event()   {}
func (RoutesRefreshed) event()    {}
func (InstanceRegistered) event() {}
func (Heartbeat) event()          {}
func (ParentHeartbeat) event()    {}

// Package events delivers the refresh triggers that keep the edgegate
// dispatch index in sync with runtime-changing configuration.
//
// A Bus fans events out synchronously to its subscribers on the
// publishing goroutine; there is no background worker. RefreshListener
// is the standard subscriber: it reacts to configuration and fleet
// events by marking the dispatch index dirty, and gates heartbeat
// events through a HeartbeatMonitor so only changed payloads trigger a
// refresh.
//
//	bus := events.NewBus()
//	events.NewRefreshListener(idx).Bind(bus)
//	...
//	bus.Publish(events.RoutesRefreshed{})
package events

package routing

import "context"

// Source resolves request paths to routes. It is the lookup capability
// the dispatch layer consumes; StaticSource and CompositeSource are the
// built-in variants and callers may provide their own.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// IgnoredPaths returns the path patterns that must never resolve
	// to a route.
	IgnoredPaths() []string

	// Routes returns one resolved route per valid spec, in declaration
	// order. Invalid specs are skipped, not fatal.
	Routes() []*Route

	// MatchingRoute resolves a request path to a route, or nil when no
	// route matches. The context carries the request classification
	// consulted during path adjustment.
	MatchingRoute(ctx context.Context, path string) *Route
}

// Refreshable is the optional capability of sources that can recompute
// their internal table on demand, for example after a configuration or
// fleet-membership change.
type Refreshable interface {
	Refresh()
}

// Ordered is the optional capability controlling a source's position in
// a CompositeSource. Lower orders are consulted first; sources without
// the capability sort with order zero.
type Ordered interface {
	Order() int
}

// Package routing implements the route resolution core of the edgegate
// gateway: it maps incoming request paths to resolved routes using
// glob-style path patterns declared in configuration.
//
// Route specs are declared in a Config, either built in code or loaded
// from YAML. A StaticSource turns the declared specs into an ordered
// route table and answers lookups; a CompositeSource merges several
// sources into a single lookup authority with deterministic ordering.
//
// # Sources
//
// The Source interface is the lookup capability consumed by the request
// path:
//
//	cfg := &routing.Config{
//		Prefix:      "/api",
//		StripPrefix: true,
//		Routes: []routing.RouteSpec{
//			{ID: "users", PathPattern: "/api/users/**", Location: "users-service", StripPrefix: true},
//		},
//	}
//	src := routing.NewStaticSource("/", cfg, nil)
//	route := src.MatchingRoute(ctx, "/api/users/42")
//
// Sources that can recompute their table on demand additionally
// implement Refreshable. A source participating in a CompositeSource may
// implement Ordered to control its position; sources without an explicit
// order sort with order zero, and ties keep their declaration order.
//
// # Matching
//
// Lookup scans the table in declaration order and returns the first
// pattern match. More specific patterns must be declared earlier if
// precedence matters. Paths matching an ignored pattern never resolve,
// even when a route pattern would otherwise match.
//
// Patterns are Ant-style globs: '*' matches a single path segment, '**'
// matches any number of segments and '?' matches a single character.
// Matching is case-sensitive. The PatternMatcher interface abstracts the
// primitive; GlobMatcher is the default implementation.
package routing

package routing

import (
	"context"
	"errors"
	"sort"
)

// ErrNilSources rejects constructing a CompositeSource without a source
// collection.
var ErrNilSources = errors.New("routing: sources must not be nil")

// CompositeSource merges an ordered collection of sources into one
// lookup authority. Children are sorted once at construction by their
// Ordered capability (stable, ties keep declaration order); listings
// concatenate the children's results and lookups return the first hit.
type CompositeSource struct {
	sources []Source
}

// NewCompositeSource creates a composite over the given sources. A nil
// collection is a construction error; an empty one is allowed.
func NewCompositeSource(sources []Source) (*CompositeSource, error) {
	if sources == nil {
		return nil, ErrNilSources
	}

	sorted := make([]Source, len(sources))
	copy(sorted, sources)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sourceOrder(sorted[i]) < sourceOrder(sorted[j])
	})

	return &CompositeSource{sources: sorted}, nil
}

func sourceOrder(s Source) int {
	if o, ok := s.(Ordered); ok {
		return o.Order()
	}
	return 0
}

// IgnoredPaths concatenates every child's ignored patterns in sorted
// child order. Duplicates are preserved.
func (c *CompositeSource) IgnoredPaths() []string {
	var ignored []string
	for _, s := range c.sources {
		ignored = append(ignored, s.IgnoredPaths()...)
	}
	return ignored
}

// Routes concatenates every child's routes in sorted child order.
// Duplicates across sources are preserved, not merged.
func (c *CompositeSource) Routes() []*Route {
	var routes []*Route
	for _, s := range c.sources {
		routes = append(routes, s.Routes()...)
	}
	return routes
}

// MatchingRoute scans the children in sorted order and returns the
// first non-nil match.
func (c *CompositeSource) MatchingRoute(ctx context.Context, path string) *Route {
	for _, s := range c.sources {
		if route := s.MatchingRoute(ctx, path); route != nil {
			return route
		}
	}
	return nil
}

// Refresh refreshes every child that supports the Refreshable
// capability; children without it are skipped.
func (c *CompositeSource) Refresh() {
	for _, s := range c.sources {
		if r, ok := s.(Refreshable); ok {
			r.Refresh()
		}
	}
}

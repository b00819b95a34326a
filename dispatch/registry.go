package dispatch

import (
	"net/http"

	"github.com/vitalvas/edgegate/routing"
)

// registry is an immutable, insertion-ordered mapping from registered
// route paths to handlers. It is built off to the side during a rebuild
// and installed with a single pointer swap.
type registry struct {
	paths    []string
	handlers map[string]http.Handler
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]http.Handler)}
}

func (r *registry) register(path string, h http.Handler) {
	if _, ok := r.handlers[path]; !ok {
		r.paths = append(r.paths, path)
	}
	r.handlers[path] = h
}

// lookup returns the handler for the first registered path matching the
// request path. An exact hit wins over pattern matching; patterns are
// tried in registration order.
func (r *registry) lookup(m routing.PatternMatcher, path string) http.Handler {
	if h, ok := r.handlers[path]; ok {
		return h
	}
	for _, p := range r.paths {
		if m.Match(p, path) {
			return r.handlers[p]
		}
	}
	return nil
}

func (r *registry) len() int {
	return len(r.paths)
}

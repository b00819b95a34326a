package dispatch

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/vitalvas/edgegate/routing"
)

// ErrorPathProvider yields the configured error-handling path. Requests
// for that path bypass dispatch entirely.
type ErrorPathProvider interface {
	ErrorPath() string
}

// Index maps fully qualified route paths to the shared dispatch
// handler. It rebuilds lazily: SetDirty(true) refreshes the underlying
// source immediately but defers re-registration to the next Lookup.
//
// The zero dirty state of a new Index is true, so the first Lookup
// builds the initial registry.
type Index struct {
	source  routing.Source
	handler http.Handler
	matcher routing.PatternMatcher

	errorPath ErrorPathProvider

	dirty    atomic.Bool
	mu       sync.Mutex // guards the rebuild-and-install sequence only
	registry atomic.Pointer[registry]

	corsMu   sync.RWMutex
	corsCfgs map[string]*CORSConfig
}

// NewIndex creates an index over the given source. Every registered
// route path dispatches to handler. The index matches with a fresh
// GlobMatcher unless SetMatcher replaces it.
func NewIndex(source routing.Source, handler http.Handler) *Index {
	idx := &Index{
		source:  source,
		handler: handler,
		matcher: routing.NewGlobMatcher(),
	}
	idx.registry.Store(newRegistry())
	idx.dirty.Store(true)
	return idx
}

// SetMatcher replaces the pattern matcher. It must be called before the
// index is shared.
func (i *Index) SetMatcher(m routing.PatternMatcher) {
	i.matcher = m
}

// SetErrorPath installs the error path provider consulted by Lookup.
func (i *Index) SetErrorPath(p ErrorPathProvider) {
	i.errorPath = p
}

// SetDirty marks the index stale. Marking dirty also refreshes the
// underlying source right away when it supports the Refreshable
// capability, so the authoritative route data reflects the triggering
// change immediately even though the index rebuild stays lazy.
func (i *Index) SetDirty(dirty bool) {
	i.dirty.Store(dirty)
	if !dirty {
		return
	}
	if r, ok := i.source.(routing.Refreshable); ok {
		r.Refresh()
	}
}

// Lookup resolves a request path to its dispatch handler, or nil when
// the request must not be dispatched: the error path, ignored paths and
// already-forwarded requests all short-circuit to nil.
func (i *Index) Lookup(ctx context.Context, path string) http.Handler {
	if i.errorPath != nil && path == i.errorPath.ErrorPath() {
		return nil
	}
	if i.isIgnoredPath(path) {
		return nil
	}
	if routing.IsForwarded(ctx) {
		return nil
	}

	if i.dirty.Load() {
		i.mu.Lock()
		// Re-check: a racing lookup may have rebuilt while this one
		// waited for the lock.
		if i.dirty.Load() {
			i.rebuild()
			i.dirty.Store(false)
		}
		i.mu.Unlock()
	}

	return i.registry.Load().lookup(i.matcher, path)
}

func (i *Index) isIgnoredPath(path string) bool {
	for _, pattern := range i.source.IgnoredPaths() {
		if i.matcher.Match(pattern, path) {
			return true
		}
	}
	return false
}

// rebuild pulls the full route list from the source and installs a
// fresh registry wholesale. An empty route list is logged but still
// installed; readers observe either the previous complete registry or
// the new one, never a partial state.
func (i *Index) rebuild() {
	routes := i.source.Routes()
	if len(routes) == 0 {
		log.Warn("dispatch: no routes found from route source")
	}

	reg := newRegistry()
	for _, route := range routes {
		reg.register(route.FullPath(), i.handler)
	}
	i.registry.Store(reg)

	log.Debugf("dispatch: registered %d route paths", reg.len())
}

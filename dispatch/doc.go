// Package dispatch implements the request-facing dispatch index of the
// edgegate gateway: a lazily rebuilt, concurrency-safe cache mapping
// fully qualified route paths to the shared dispatch handler.
//
// The index sits between the HTTP container and a routing.Source. When
// configuration or fleet membership changes, an upstream collaborator
// calls SetDirty(true); the source's data is refreshed eagerly, while
// the expensive re-registration of every route path is deferred to the
// next Lookup. Bursts of refresh triggers therefore cost one rebuild.
//
//	idx := dispatch.NewIndex(source, gatewayHandler)
//	...
//	if h := idx.Lookup(r.Context(), r.URL.Path); h != nil {
//		h.ServeHTTP(w, r)
//	}
//
// Lookups during a pending rebuild either perform the rebuild
// themselves or wait briefly for the in-flight one; they never observe
// a partially populated index.
package dispatch

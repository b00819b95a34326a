package routing

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// routeTable is an immutable, insertion-ordered pattern -> spec
// mapping. It is built off to the side and installed with a single
// atomic swap, so readers never observe a half-built table.
type routeTable struct {
	patterns []string
	specs    map[string]RouteSpec
}

func (t *routeTable) upsert(spec RouteSpec) {
	// Last write wins for duplicate patterns, keeping the position of
	// the first declaration.
	if _, ok := t.specs[spec.PathPattern]; !ok {
		t.patterns = append(t.patterns, spec.PathPattern)
	}
	t.specs[spec.PathPattern] = spec
}

// StaticSource resolves routes from the specs declared in a Config.
// The route table is built lazily on first use and rebuilt on Refresh;
// resolution itself is recomputed per call and never cached.
type StaticSource struct {
	cfg                 *Config
	matcher             PatternMatcher
	frontControllerPath string
	order               int

	table atomic.Pointer[routeTable]
}

// NewStaticSource creates a source over cfg. frontControllerPath is the
// base path of the generic front controller ("/" when it is mounted at
// the root). A nil matcher falls back to a fresh GlobMatcher.
func NewStaticSource(frontControllerPath string, cfg *Config, matcher PatternMatcher) *StaticSource {
	if frontControllerPath == "" {
		frontControllerPath = "/"
	}
	if matcher == nil {
		matcher = NewGlobMatcher()
	}
	return &StaticSource{
		cfg:                 cfg,
		matcher:             matcher,
		frontControllerPath: frontControllerPath,
	}
}

// SetOrder sets the source's position in a CompositeSource. It must be
// called before the source is shared.
func (s *StaticSource) SetOrder(order int) {
	s.order = order
}

// Order implements Ordered.
func (s *StaticSource) Order() int {
	return s.order
}

// IgnoredPaths returns the configured ignored patterns.
func (s *StaticSource) IgnoredPaths() []string {
	return s.cfg.IgnoredPatterns
}

// Routes resolves every table entry against its own pattern, in
// declaration order. Entries that fail to resolve are logged and
// skipped; a partial result is valid output.
func (s *StaticSource) Routes() []*Route {
	t := s.routeTable()

	routes := make([]*Route, 0, len(t.patterns))
	for _, pattern := range t.patterns {
		spec := t.specs[pattern]
		route, err := s.resolveRoute(spec, pattern)
		if err != nil {
			log.Warnf("routing: invalid route %q (location %q): %v", spec.ID, spec.Location, err)
			continue
		}
		routes = append(routes, route)
	}

	return routes
}

// MatchingRoute resolves a request path to a route. The path is first
// adjusted for the dispatcher base path indicated by the request
// classification; paths matching an ignored pattern never resolve.
func (s *StaticSource) MatchingRoute(ctx context.Context, path string) *Route {
	log.Debugf("routing: finding route for path %s", path)

	t := s.routeTable()

	adjusted := s.adjustPath(ctx, path)
	spec, ok := s.matchSpec(t, adjusted)
	if !ok {
		return nil
	}

	route, err := s.resolveRoute(spec, adjusted)
	if err != nil {
		log.Warnf("routing: route %q matched %s but failed to resolve: %v", spec.ID, adjusted, err)
		return nil
	}

	return route
}

// Refresh rebuilds the route table from the configuration and installs
// it unconditionally.
func (s *StaticSource) Refresh() {
	s.table.Store(s.locateRoutes())
}

// routeTable returns the current table, building it on first access.
// A racing first build is benign: both goroutines compute the same
// table from the same configuration.
func (s *StaticSource) routeTable() *routeTable {
	if t := s.table.Load(); t != nil {
		return t
	}
	t := s.locateRoutes()
	s.table.CompareAndSwap(nil, t)
	return s.table.Load()
}

// locateRoutes computes the ordered pattern -> spec table from the
// declared specs.
func (s *StaticSource) locateRoutes() *routeTable {
	t := &routeTable{specs: make(map[string]RouteSpec, len(s.cfg.Routes))}
	for _, spec := range s.cfg.Routes {
		t.upsert(spec.normalized())
	}
	return t
}

// matchSpec scans the table in declaration order and returns the first
// spec whose pattern matches the adjusted path. Ignored patterns
// short-circuit before any route pattern is tried.
func (s *StaticSource) matchSpec(t *routeTable, path string) (RouteSpec, bool) {
	if s.matchesIgnored(path) {
		return RouteSpec{}, false
	}
	for _, pattern := range t.patterns {
		log.Debugf("routing: matching pattern %s", pattern)
		if s.matcher.Match(pattern, path) {
			return t.specs[pattern], true
		}
	}
	return RouteSpec{}, false
}

func (s *StaticSource) matchesIgnored(path string) bool {
	for _, pattern := range s.cfg.IgnoredPatterns {
		if s.matcher.Match(pattern, path) {
			log.Debugf("routing: path %s matches ignored pattern %s", path, pattern)
			return true
		}
	}
	return false
}

// errNoLocation rejects specs that normalize to an empty location.
var errNoLocation = errors.New("route has no location")

// resolveRoute derives a Route from a spec and an already adjusted
// path. The global prefix is stripped from the target path when global
// strip is enabled; independently, when the spec strips its own prefix
// and its pattern carries a wildcard, the first textual occurrence of
// the pattern's literal prefix is removed from the target path and the
// effective prefix is extended by it. The per-route removal is
// deliberately not anchored to the start of the path.
func (s *StaticSource) resolveRoute(spec RouteSpec, path string) (*Route, error) {
	if spec.Location == "" {
		return nil, errNoLocation
	}

	targetPath := path
	prefix := strings.TrimSuffix(s.cfg.Prefix, "/")
	if strings.HasPrefix(path, prefix+"/") && s.cfg.StripPrefix {
		targetPath = path[len(prefix):]
	}

	if spec.StripPrefix {
		if index := strings.Index(spec.PathPattern, "*") - 1; index > 0 {
			routePrefix := spec.PathPattern[:index]
			if strings.Contains(targetPath, routePrefix) {
				targetPath = strings.Replace(targetPath, routePrefix, "", 1)
				prefix += routePrefix
			}
		}
	}

	retryable := s.cfg.retryableDefault()
	if spec.Retryable != nil {
		retryable = *spec.Retryable
	}

	route := &Route{
		ID:          spec.ID,
		Path:        targetPath,
		Location:    spec.Location,
		Prefix:      prefix,
		Retryable:   retryable,
		StripPrefix: spec.StripPrefix,
	}
	if spec.CustomSensitiveHeaders {
		route.SensitiveHeaders = append([]string(nil), spec.SensitiveHeaders...)
		route.CustomSensitiveHeaders = true
	}

	return route, nil
}

// adjustPath strips the dispatcher base path indicated by the request
// classification. The front controller strip is prefix-checked; the
// gateway strip is length-based by contract, so it only guards against
// paths shorter than the configured gateway path and otherwise cuts
// blindly.
func (s *StaticSource) adjustPath(ctx context.Context, path string) string {
	switch ClassificationOf(ctx) {
	case ClassificationFrontController:
		if s.frontControllerPath != "/" && strings.HasPrefix(path, s.frontControllerPath) {
			log.Debugf("routing: stripped front controller path %s", s.frontControllerPath)
			return path[len(s.frontControllerPath):]
		}
	case ClassificationGateway:
		gw := s.cfg.GatewayPath
		if gw != "" && gw != "/" && len(path) >= len(gw) {
			log.Debugf("routing: stripped gateway path %s", gw)
			return path[len(gw):]
		}
	}
	return path
}

package routing

import "strings"

// ForwardPrefix marks a route location that is forwarded inside the
// gateway process instead of being proxied to a remote service.
const ForwardPrefix = "forward:"

// RouteSpec is a raw, author-declared routing rule prior to resolution.
// Specs are built from configuration and are immutable once constructed;
// a refresh replaces them wholesale.
type RouteSpec struct {
	// ID identifies the route. When empty it is derived from the path
	// pattern (or, failing that, from the location).
	ID string `yaml:"id"`

	// PathPattern is the Ant-style glob the route matches, unique
	// within a source. When empty it is derived from the ID as
	// "/<id>/**".
	PathPattern string `yaml:"path"`

	// Location is the target service identifier, an absolute URL, or a
	// "forward:" path. Defaults to the ID when empty.
	Location string `yaml:"location"`

	// Retryable overrides the global retryable default when set. Nil
	// means inherit.
	Retryable *bool `yaml:"retryable"`

	// StripPrefix controls whether the matched route prefix is removed
	// from the target path. Defaults to true when loaded from YAML.
	StripPrefix bool `yaml:"strip_prefix"`

	// SensitiveHeaders lists headers that must not be passed to the
	// target. Only meaningful when CustomSensitiveHeaders is true.
	SensitiveHeaders []string `yaml:"sensitive_headers"`

	// CustomSensitiveHeaders records whether SensitiveHeaders was
	// explicitly set, distinguishing "no override" from "override to
	// an empty set".
	CustomSensitiveHeaders bool `yaml:"-"`
}

// UnmarshalYAML decodes a route spec, applying the defaults an author
// would expect from a config file: strip_prefix defaults to true and an
// explicitly present sensitive_headers key marks the spec as carrying a
// custom sensitive header set, even when the list is empty.
func (s *RouteSpec) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		ID               string    `yaml:"id"`
		PathPattern      string    `yaml:"path"`
		Location         string    `yaml:"location"`
		Retryable        *bool     `yaml:"retryable"`
		StripPrefix      *bool     `yaml:"strip_prefix"`
		SensitiveHeaders *[]string `yaml:"sensitive_headers"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.PathPattern = raw.PathPattern
	s.Location = raw.Location
	s.Retryable = raw.Retryable
	s.StripPrefix = raw.StripPrefix == nil || *raw.StripPrefix
	if raw.SensitiveHeaders != nil {
		s.SensitiveHeaders = *raw.SensitiveHeaders
		s.CustomSensitiveHeaders = true
	}

	return nil
}

// normalized returns a copy of the spec with the ID, pattern and
// location defaulting rules applied.
func (s RouteSpec) normalized() RouteSpec {
	if s.ID == "" {
		s.ID = extractID(s.PathPattern)
	}
	if s.ID == "" {
		s.ID = s.Location
	}
	if s.PathPattern == "" && s.ID != "" {
		s.PathPattern = "/" + s.ID + "/**"
	}
	if s.Location == "" {
		s.Location = s.ID
	}
	return s
}

// extractID derives a route ID from a path pattern by dropping the
// leading slash and everything from the first wildcard on.
func extractID(pattern string) string {
	id := strings.TrimPrefix(pattern, "/")
	if i := strings.IndexAny(id, "*?"); i >= 0 {
		id = id[:i]
	}
	return strings.Trim(id, "/")
}

// Route is a fully resolved, request-ready routing decision. It is
// derived deterministically from one RouteSpec plus the global
// configuration and is recomputed on every resolution.
type Route struct {
	// ID is the identifier of the spec the route was resolved from.
	ID string

	// Path is the target path with the configured prefixes already
	// stripped.
	Path string

	// Location is the target service identifier, URL or forward path.
	Location string

	// Prefix is the effective prefix removed from the request path,
	// possibly extended by the per-route prefix.
	Prefix string

	// Retryable is the resolved retry policy (spec override or global
	// default).
	Retryable bool

	// SensitiveHeaders carries the spec's explicit header override.
	// It is only meaningful when CustomSensitiveHeaders is true;
	// otherwise the caller applies its own default.
	SensitiveHeaders []string

	// CustomSensitiveHeaders reports whether the spec explicitly
	// overrode the sensitive header set.
	CustomSensitiveHeaders bool

	// StripPrefix echoes the spec's strip setting.
	StripPrefix bool
}

// FullPath returns the fully qualified route path, the key under which
// the route is registered in the dispatch index.
func (r *Route) FullPath() string {
	return r.Prefix + r.Path
}

// IsForwardLocation reports whether the route forwards inside the
// gateway process rather than proxying to a remote location.
func (r *Route) IsForwardLocation() bool {
	return strings.HasPrefix(r.Location, ForwardPrefix)
}

// IsURLLocation reports whether the route's location is an absolute
// http(s) URL rather than a registered service identifier.
func (r *Route) IsURLLocation() bool {
	return strings.HasPrefix(r.Location, "http:") || strings.HasPrefix(r.Location, "https:")
}

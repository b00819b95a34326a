package routing

import (
	"fmt"
	"os"

	"golang.org/x/net/http/httpguts"
	"gopkg.in/yaml.v3"
)

// DefaultGatewayPath is the base path under which the gateway's own
// dispatcher is mounted when no explicit path is configured.
const DefaultGatewayPath = "/edgegate"

// Config holds the gateway-wide routing configuration: the declared
// route specs, the ignored patterns and the global prefix and policy
// defaults applied during route resolution.
//
// Routes keep their declaration order; lookup returns the first
// matching pattern, so more specific patterns must be declared first.
type Config struct {
	// Prefix is the common path prefix of all gateway routes, for
	// example "/api". A single trailing slash is ignored.
	Prefix string `yaml:"prefix"`

	// StripPrefix removes Prefix from the target path of every
	// resolved route. Defaults to true when loaded from YAML.
	StripPrefix bool `yaml:"strip_prefix"`

	// Retryable is the global default applied to specs that do not set
	// their own retry policy. Nil resolves to false.
	Retryable *bool `yaml:"retryable"`

	// Routes lists the declared route specs in declaration order.
	Routes []RouteSpec `yaml:"routes"`

	// IgnoredPatterns lists path globs that must never resolve to a
	// route. They are checked before any route pattern.
	IgnoredPatterns []string `yaml:"ignored_patterns"`

	// GatewayPath is the base path of requests dispatched directly to
	// the gateway servlet, stripped during path adjustment. Defaults
	// to DefaultGatewayPath when loaded from YAML.
	GatewayPath string `yaml:"gateway_path"`
}

// LoadConfig reads and validates a YAML routing configuration.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routing: read config: %w", err)
	}

	raw := struct {
		Prefix          string      `yaml:"prefix"`
		StripPrefix     *bool       `yaml:"strip_prefix"`
		Retryable       *bool       `yaml:"retryable"`
		Routes          []RouteSpec `yaml:"routes"`
		IgnoredPatterns []string    `yaml:"ignored_patterns"`
		GatewayPath     string      `yaml:"gateway_path"`
	}{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("routing: parse config: %w", err)
	}

	cfg := &Config{
		Prefix:          raw.Prefix,
		StripPrefix:     raw.StripPrefix == nil || *raw.StripPrefix,
		Retryable:       raw.Retryable,
		Routes:          raw.Routes,
		IgnoredPatterns: raw.IgnoredPatterns,
		GatewayPath:     raw.GatewayPath,
	}
	if cfg.GatewayPath == "" {
		cfg.GatewayPath = DefaultGatewayPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the declared route specs for entries the resolver
// could never serve: specs with neither an ID, a pattern nor a
// location, and sensitive header overrides that are not valid HTTP
// field names.
func (c *Config) Validate() error {
	for i, spec := range c.Routes {
		n := spec.normalized()
		if n.ID == "" && n.PathPattern == "" {
			return fmt.Errorf("routing: routes[%d]: id, path or location is required", i)
		}
		for _, h := range spec.SensitiveHeaders {
			if !httpguts.ValidHeaderFieldName(h) {
				return fmt.Errorf("routing: routes[%d] (%s): invalid sensitive header %q", i, n.ID, h)
			}
		}
	}
	return nil
}

// retryableDefault resolves the global tri-state retry default.
func (c *Config) retryableDefault() bool {
	return c.Retryable != nil && *c.Retryable
}

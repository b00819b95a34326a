package dispatch

import "sort"

// CORSConfig is a per-pattern CORS policy. The index only stores
// policies; computing them from web configuration is the caller's
// concern.
type CORSConfig struct {
	// AllowedOrigins is a list of exact origin strings or "*".
	AllowedOrigins []string

	// AllowedMethods lists the methods advertised in preflight
	// responses.
	AllowedMethods []string

	// AllowedHeaders lists the headers the client may send.
	AllowedHeaders []string

	// ExposeHeaders lists the headers the browser may expose to
	// client code.
	ExposeHeaders []string

	// AllowCredentials sets Access-Control-Allow-Credentials: true.
	AllowCredentials bool

	// MaxAge is the duration in seconds a preflight result may be
	// cached. Zero omits the header.
	MaxAge int
}

// SetCORSConfigurations replaces the pattern -> CORS policy mapping.
// The map is copied; later mutation by the caller has no effect.
func (i *Index) SetCORSConfigurations(cfgs map[string]*CORSConfig) {
	copied := make(map[string]*CORSConfig, len(cfgs))
	for pattern, cfg := range cfgs {
		copied[pattern] = cfg
	}

	i.corsMu.Lock()
	i.corsCfgs = copied
	i.corsMu.Unlock()
}

// CORSConfiguration returns the policy for a request path, preferring
// an exact entry and falling back to pattern matching in lexical key
// order. Nil means no policy is configured for the path.
func (i *Index) CORSConfiguration(path string) *CORSConfig {
	i.corsMu.RLock()
	defer i.corsMu.RUnlock()

	if cfg, ok := i.corsCfgs[path]; ok {
		return cfg
	}

	patterns := make([]string, 0, len(i.corsCfgs))
	for pattern := range i.corsCfgs {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	for _, pattern := range patterns {
		if i.matcher.Match(pattern, path) {
			return i.corsCfgs[pattern]
		}
	}

	return nil
}

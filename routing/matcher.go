package routing

import (
	"sync"

	"github.com/gobwas/glob"
)

// PatternMatcher reports whether a literal path matches a glob-style
// path pattern. Implementations must be safe for concurrent use.
type PatternMatcher interface {
	Match(pattern, path string) bool
}

// GlobMatcher is the default PatternMatcher. It compiles patterns with
// '/' as the segment separator, giving Ant-style semantics: '*' matches
// within a single segment, '**' spans segments and '?' matches a single
// character. Matching is case-sensitive.
//
// Compiled patterns are cached; the number of unique patterns is
// bounded by the configuration, so the cache grows to a fixed size and
// stays there.
type GlobMatcher struct {
	cache sync.Map // pattern -> glob.Glob, or nil for invalid patterns
}

// NewGlobMatcher creates an empty matcher.
func NewGlobMatcher() *GlobMatcher {
	return &GlobMatcher{}
}

// Match reports whether path matches pattern. An invalid pattern never
// matches.
func (m *GlobMatcher) Match(pattern, path string) bool {
	g, ok := m.compiled(pattern)
	if !ok {
		return false
	}
	return g.Match(path)
}

func (m *GlobMatcher) compiled(pattern string) (glob.Glob, bool) {
	if v, ok := m.cache.Load(pattern); ok {
		if v == nil {
			return nil, false
		}
		return v.(glob.Glob), true
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		m.cache.Store(pattern, nil)
		return nil, false
	}

	actual, _ := m.cache.LoadOrStore(pattern, g)

	return actual.(glob.Glob), true
}

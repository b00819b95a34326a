package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/edgegate/routing"
)

func TestIndexCORSConfiguration(t *testing.T) {
	newTestIndex := func() *Index {
		src := &countingSource{}
		return NewIndex(src, noopHandler)
	}

	t.Run("nil without configured policies", func(t *testing.T) {
		idx := newTestIndex()
		assert.Nil(t, idx.CORSConfiguration("/users/42"))
	})

	t.Run("exact entry wins over patterns", func(t *testing.T) {
		idx := newTestIndex()
		exact := &CORSConfig{AllowedOrigins: []string{"https://app.example.com"}}
		wild := &CORSConfig{AllowedOrigins: []string{"*"}}
		idx.SetCORSConfigurations(map[string]*CORSConfig{
			"/users/me": exact,
			"/users/**": wild,
		})

		assert.Same(t, exact, idx.CORSConfiguration("/users/me"))
		assert.Same(t, wild, idx.CORSConfiguration("/users/42"))
	})

	t.Run("patterns are tried in lexical order", func(t *testing.T) {
		idx := newTestIndex()
		a := &CORSConfig{MaxAge: 1}
		b := &CORSConfig{MaxAge: 2}
		idx.SetCORSConfigurations(map[string]*CORSConfig{
			"/svc/**": b,
			"/**":     a,
		})

		// "/**" sorts before "/svc/**".
		assert.Same(t, a, idx.CORSConfiguration("/svc/x"))
	})

	t.Run("replaces the mapping wholesale", func(t *testing.T) {
		idx := newTestIndex()
		idx.SetCORSConfigurations(map[string]*CORSConfig{
			"/old/**": {},
		})
		require.NotNil(t, idx.CORSConfiguration("/old/x"))

		idx.SetCORSConfigurations(map[string]*CORSConfig{
			"/new/**": {},
		})
		assert.Nil(t, idx.CORSConfiguration("/old/x"))
		assert.NotNil(t, idx.CORSConfiguration("/new/x"))
	})

	t.Run("copies the caller's map", func(t *testing.T) {
		idx := newTestIndex()
		cfgs := map[string]*CORSConfig{
			"/users/**": {},
		}
		idx.SetCORSConfigurations(cfgs)

		cfgs["/orders/**"] = &CORSConfig{}
		assert.Nil(t, idx.CORSConfiguration("/orders/1"))
	})

	t.Run("uses the configured matcher", func(t *testing.T) {
		idx := newTestIndex()
		idx.SetMatcher(routing.NewGlobMatcher())
		idx.SetCORSConfigurations(map[string]*CORSConfig{
			"/a/*": {},
		})

		assert.NotNil(t, idx.CORSConfiguration("/a/x"))
		assert.Nil(t, idx.CORSConfiguration("/a/x/y"))
	})
}

package dispatch

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/edgegate/routing"
)

// taggedHandler writes its tag, so tests can tell registered handlers
// apart.
func taggedHandler(tag string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, tag)
	})
}

func handlerTag(t *testing.T, h http.Handler) string {
	t.Helper()
	require.NotNil(t, h)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Body.String()
}

func TestRegistryLookup(t *testing.T) {
	m := routing.NewGlobMatcher()

	t.Run("exact hit wins over pattern matching", func(t *testing.T) {
		r := newRegistry()
		r.register("/users/**", taggedHandler("wild"))
		r.register("/users/me", taggedHandler("exact"))

		assert.Equal(t, "exact", handlerTag(t, r.lookup(m, "/users/me")))
		assert.Equal(t, "wild", handlerTag(t, r.lookup(m, "/users/42")))
	})

	t.Run("patterns match in registration order", func(t *testing.T) {
		r := newRegistry()
		r.register("/svc/**", taggedHandler("first"))
		r.register("/svc/admin/**", taggedHandler("second"))

		assert.Equal(t, "first", handlerTag(t, r.lookup(m, "/svc/admin/x")))
	})

	t.Run("re-registering a path keeps its position", func(t *testing.T) {
		r := newRegistry()
		r.register("/a/**", taggedHandler("old"))
		r.register("/b/**", taggedHandler("b"))
		r.register("/a/**", taggedHandler("updated"))

		assert.Equal(t, 2, r.len())
		assert.Equal(t, "updated", handlerTag(t, r.lookup(m, "/a/x")))
	})

	t.Run("no match returns nil", func(t *testing.T) {
		r := newRegistry()
		r.register("/users/**", taggedHandler("users"))

		assert.Nil(t, r.lookup(m, "/orders/1"))
	})
}

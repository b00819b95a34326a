package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRouteFullPath(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  string
	}{
		{name: "prefix and path", route: Route{Prefix: "/api", Path: "/users/42"}, want: "/api/users/42"},
		{name: "empty prefix", route: Route{Path: "/users/42"}, want: "/users/42"},
		{name: "extended prefix", route: Route{Prefix: "/api/legacy", Path: "/old"}, want: "/api/legacy/old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.route.FullPath())
		})
	}
}

func TestRouteLocationKind(t *testing.T) {
	t.Run("forward locations", func(t *testing.T) {
		assert.True(t, (&Route{Location: "forward:/error"}).IsForwardLocation())
		assert.False(t, (&Route{Location: "users-service"}).IsForwardLocation())
	})

	t.Run("url locations", func(t *testing.T) {
		assert.True(t, (&Route{Location: "http://users.internal"}).IsURLLocation())
		assert.True(t, (&Route{Location: "https://users.internal"}).IsURLLocation())
		assert.False(t, (&Route{Location: "users-service"}).IsURLLocation())
	})
}

func TestRouteSpecUnmarshalYAML(t *testing.T) {
	t.Run("strip_prefix defaults to true", func(t *testing.T) {
		var spec RouteSpec
		require.NoError(t, yaml.Unmarshal([]byte("id: users\nlocation: users-service"), &spec))
		assert.True(t, spec.StripPrefix)
	})

	t.Run("explicit strip_prefix false survives", func(t *testing.T) {
		var spec RouteSpec
		require.NoError(t, yaml.Unmarshal([]byte("id: users\nstrip_prefix: false"), &spec))
		assert.False(t, spec.StripPrefix)
	})

	t.Run("absent sensitive_headers is not an override", func(t *testing.T) {
		var spec RouteSpec
		require.NoError(t, yaml.Unmarshal([]byte("id: users"), &spec))
		assert.False(t, spec.CustomSensitiveHeaders)
		assert.Nil(t, spec.SensitiveHeaders)
	})

	t.Run("present sensitive_headers is an override", func(t *testing.T) {
		var spec RouteSpec
		require.NoError(t, yaml.Unmarshal([]byte("id: users\nsensitive_headers: [Cookie]"), &spec))
		assert.True(t, spec.CustomSensitiveHeaders)
		assert.Equal(t, []string{"Cookie"}, spec.SensitiveHeaders)
	})
}

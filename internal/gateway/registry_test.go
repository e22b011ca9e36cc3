package gateway_test

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/fivetwenty-io/xapi-client/internal/gateway"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := gateway.NewRegistry()

	t.Run("resolves every catalogued operation", func(t *testing.T) {
		t.Parallel()

		names := []string{
			"user-by-id",
			"user-by-username",
			"users-batch",
			"tweet-by-id",
			"tweets-batch",
			"user-timeline",
			"user-mentions",
			"search-recent",
			"count-recent",
			"followers",
			"following",
			"list-by-id",
			"list-tweets",
			"user-owned-lists",
		}

		for _, name := range names {
			op, err := registry.Lookup(name)
			require.NoError(t, err, "operation %s", name)
			assert.Equal(t, name, op.Name)
		}
	})

	t.Run("unknown operation", func(t *testing.T) {
		t.Parallel()

		op, err := registry.Lookup("delete-tweet")
		require.Error(t, err)
		assert.Nil(t, op)
		assert.True(t, errors.Is(err, xapi.ErrOperationNotFound))
		assert.Contains(t, err.Error(), "delete-tweet")
	})
}

func TestRegistry_ReadOnly(t *testing.T) {
	t.Parallel()

	for _, info := range gateway.NewRegistry().Operations() {
		assert.Equal(t, http.MethodGet, info.Method, "operation %s", info.Name)
	}
}

func TestRegistry_Operations(t *testing.T) {
	t.Parallel()

	infos := gateway.NewRegistry().Operations()
	require.Len(t, infos, 14)

	assert.True(t, sort.SliceIsSorted(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	}))

	for _, info := range infos {
		assert.True(t, sort.StringsAreSorted(info.Required), "operation %s", info.Name)
		assert.True(t, sort.StringsAreSorted(info.Optional), "operation %s", info.Name)

		// Every path placeholder must be a declared required parameter.
		for _, segment := range strings.Split(info.Path, "/") {
			if !strings.HasPrefix(segment, ":") {
				continue
			}

			assert.Contains(t, info.Required, segment[1:], "operation %s", info.Name)
		}
	}
}

package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/xapi-client/internal/gateway"
	internalhttp "github.com/fivetwenty-io/xapi-client/internal/http"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T, handler http.HandlerFunc) (*gateway.Dispatcher, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gateway.New(internalhttp.NewClient(server.URL, "test-token")), server
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("user by username", func(t *testing.T) {
		t.Parallel()

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/users/by/username/x", request.URL.Path)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "description,public_metrics,created_at", request.URL.Query().Get("user.fields"))

			_, _ = writer.Write([]byte(`{"data": {"id": "783214", "name": "X", "username": "x"}}`))
		})

		result, err := dispatcher.Dispatch(context.Background(), "user-by-username", xapi.Args{"username": "x"})
		require.NoError(t, err)

		var user xapi.User

		require.NoError(t, result.DecodeData(&user))
		assert.Equal(t, "783214", user.ID)
		assert.Equal(t, "x", user.Username)
		assert.Empty(t, result.PartialErrors)
	})

	t.Run("batch lookup passes ids through intact", func(t *testing.T) {
		t.Parallel()

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tweets", request.URL.Path)
			assert.Equal(t, "1,2,3", request.URL.Query().Get("ids"))

			_, _ = writer.Write([]byte(`{"data": [{"id": "1", "text": "a"}, {"id": "2", "text": "b"}, {"id": "3", "text": "c"}]}`))
		})

		result, err := dispatcher.Dispatch(context.Background(), "tweets-batch", xapi.Args{
			"ids": []string{"1", "2", "3"},
		})
		require.NoError(t, err)

		var tweets []xapi.Tweet

		require.NoError(t, result.DecodeData(&tweets))
		assert.Len(t, tweets, 3)
	})

	t.Run("partial failure surfaces alongside data", func(t *testing.T) {
		t.Parallel()

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{
				"data": [{"id": "1", "text": "a"}],
				"errors": [{"title": "Not Found Error", "detail": "Could not find tweet with ids: [2].", "resource_id": "2"}]
			}`))
		})

		result, err := dispatcher.Dispatch(context.Background(), "tweets-batch", xapi.Args{
			"ids": []string{"1", "2"},
		})
		require.NoError(t, err)

		var tweets []xapi.Tweet

		require.NoError(t, result.DecodeData(&tweets))
		assert.Len(t, tweets, 1)
		require.Len(t, result.PartialErrors, 1)
		assert.Equal(t, "2", result.PartialErrors[0].ResourceID)
	})

	t.Run("rate limited without internal retry", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.Header().Set("Retry-After", "60")
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"errors": [{"title": "Too Many Requests"}]}`))
		})

		_, err := dispatcher.Dispatch(context.Background(), "search-recent", xapi.Args{"query": "golang"})
		require.Error(t, err)
		assert.True(t, xapi.IsRateLimited(err))
		assert.Equal(t, 1, attempts)

		wait, ok := xapi.RetryAfter(err)
		assert.True(t, ok)
		assert.Equal(t, 60*time.Second, wait)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"errors": [{"title": "Not Found Error", "detail": "Could not find user with id: [999]."}]}`))
		})

		_, err := dispatcher.Dispatch(context.Background(), "user-by-id", xapi.Args{"id": "999"})
		require.Error(t, err)
		assert.True(t, xapi.IsNotFound(err))
		assert.Contains(t, err.Error(), "user-by-id")
		assert.Contains(t, err.Error(), "Could not find user")
	})

	t.Run("unknown operation", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			attempts++
		})

		_, err := dispatcher.Dispatch(context.Background(), "post-tweet", xapi.Args{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, xapi.ErrOperationNotFound))
		assert.Equal(t, 0, attempts)
	})

	t.Run("validation failures never reach the network", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			attempts++
		})

		ids := make([]string, 101)
		for i := range ids {
			ids[i] = "1"
		}

		_, err := dispatcher.Dispatch(context.Background(), "users-batch", xapi.Args{"ids": ids})
		require.Error(t, err)
		assert.True(t, xapi.IsValidation(err))

		// The same batch as one comma-joined string counts per element.
		_, err = dispatcher.Dispatch(context.Background(), "users-batch", xapi.Args{
			"ids": strings.Join(ids, ","),
		})
		require.Error(t, err)
		assert.True(t, xapi.IsValidation(err))

		_, err = dispatcher.Dispatch(context.Background(), "user-by-id", xapi.Args{
			"id":     "783214",
			"follow": "yes",
		})
		require.Error(t, err)
		assert.True(t, xapi.IsValidation(err))

		assert.Equal(t, 0, attempts)
	})

	t.Run("dispatch is repeatable", func(t *testing.T) {
		t.Parallel()

		dispatcher, _ := newDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"data": {"id": "783214", "username": "x"}, "meta": {"result_count": 1}}`))
		})

		first, err := dispatcher.Dispatch(context.Background(), "user-by-id", xapi.Args{"id": "783214"})
		require.NoError(t, err)

		second, err := dispatcher.Dispatch(context.Background(), "user-by-id", xapi.Args{"id": "783214"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestDispatcher_Operations(t *testing.T) {
	t.Parallel()

	dispatcher := gateway.New(internalhttp.NewClient("http://localhost", ""))

	infos := dispatcher.Operations()
	assert.Len(t, infos, 14)
}

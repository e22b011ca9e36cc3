package xclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
	"github.com/fivetwenty-io/xapi-client/pkg/xclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := xclient.New(nil)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.True(t, errors.Is(err, xapi.ErrConfigRequired))
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		client, err := xclient.New(&xapi.Config{})
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "BearerToken")
	})

	t.Run("defaults to the public endpoint", func(t *testing.T) {
		t.Parallel()

		config := &xapi.Config{BearerToken: "token"}

		client, err := xclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api.x.com/2", config.APIEndpoint)
	})

	t.Run("endpoint normalization", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name     string
			endpoint string
			want     string
		}{
			{"trailing slash trimmed", "https://api.x.com/2/", "https://api.x.com/2"},
			{"scheme added", "api.x.com/2", "https://api.x.com/2"},
			{"http preserved", "http://localhost:8080", "http://localhost:8080"},
		}

		for _, testCase := range cases {
			testCase := testCase
			t.Run(testCase.name, func(t *testing.T) {
				t.Parallel()

				config := &xapi.Config{APIEndpoint: testCase.endpoint, BearerToken: "token"}

				_, err := xclient.New(config)
				require.NoError(t, err)
				assert.Equal(t, testCase.want, config.APIEndpoint)
			})
		}
	})

	t.Run("dispatches against the configured endpoint", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

			_, _ = writer.Write([]byte(`{"data": {"id": "783214", "username": "x"}}`))
		}))
		defer server.Close()

		client, err := xclient.New(&xapi.Config{APIEndpoint: server.URL, BearerToken: "test-token"})
		require.NoError(t, err)

		user, err := client.Users().Get(context.Background(), "783214")
		require.NoError(t, err)
		assert.Equal(t, "x", user.Username)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := xclient.NewWithToken("token")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = xclient.NewWithToken("")
	require.Error(t, err)
}

func TestNewFromEnv(t *testing.T) {
	t.Run("token present", func(t *testing.T) {
		t.Setenv("X_BEARER_TOKEN", "env-token")

		client, err := xclient.NewFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("token missing", func(t *testing.T) {
		t.Setenv("X_BEARER_TOKEN", "")

		client, err := xclient.NewFromEnv()
		require.Error(t, err)
		assert.Nil(t, client)
		assert.True(t, errors.Is(err, xapi.ErrBearerTokenMissing))
		assert.Contains(t, err.Error(), "X_BEARER_TOKEN")
	})
}

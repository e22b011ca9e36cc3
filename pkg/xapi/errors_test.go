package xapi_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	withStatus := &xapi.Error{Kind: xapi.ErrorKindNotFound, Status: 404, Detail: "no such user"}
	assert.Equal(t, "not_found (status 404): no such user", withStatus.Error())

	withoutStatus := &xapi.Error{Kind: xapi.ErrorKindTimeout, Detail: "deadline exceeded"}
	assert.Equal(t, "timeout: deadline exceeded", withoutStatus.Error())
}

func TestError_FirstProblem(t *testing.T) {
	t.Parallel()

	empty := &xapi.Error{Kind: xapi.ErrorKindBadRequest}
	assert.Nil(t, empty.FirstProblem())

	withProblems := &xapi.Error{
		Kind:     xapi.ErrorKindBadRequest,
		Problems: []xapi.Problem{{Title: "Invalid Request"}, {Title: "second"}},
	}
	require.NotNil(t, withProblems.FirstProblem())
	assert.Equal(t, "Invalid Request", withProblems.FirstProblem().Title)
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  *xapi.ValidationError
		want string
	}{
		{
			name: "missing parameter",
			err:  &xapi.ValidationError{Code: xapi.ValidationMissingParameter, Param: "id"},
			want: `missing required parameter "id"`,
		},
		{
			name: "unknown parameter",
			err:  &xapi.ValidationError{Code: xapi.ValidationUnknownParameter, Param: "follow"},
			want: `unknown parameter "follow"`,
		},
		{
			name: "batch too large",
			err:  &xapi.ValidationError{Code: xapi.ValidationBatchTooLarge, Param: "ids", Given: 101, Limit: 100},
			want: `parameter "ids": 101 ids given, limit is 100`,
		},
		{
			name: "out of range",
			err:  &xapi.ValidationError{Code: xapi.ValidationOutOfRange, Param: "max_results", Given: 5, Min: 10, Max: 100},
			want: `parameter "max_results": 5 outside allowed range [10, 100]`,
		},
		{
			name: "invalid type",
			err:  &xapi.ValidationError{Code: xapi.ValidationInvalidType, Param: "id"},
			want: `parameter "id" has an invalid type`,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.err.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("user-by-id: %w", &xapi.Error{Kind: xapi.ErrorKindNotFound, Status: 404})
	assert.True(t, xapi.IsNotFound(notFound))
	assert.False(t, xapi.IsUnauthorized(notFound))
	assert.False(t, xapi.IsForbidden(notFound))
	assert.False(t, xapi.IsRateLimited(notFound))
	assert.False(t, xapi.IsValidation(notFound))

	valErr := fmt.Errorf("users-batch: %w", &xapi.ValidationError{Code: xapi.ValidationBatchTooLarge, Param: "ids"})
	assert.True(t, xapi.IsValidation(valErr))
	assert.False(t, xapi.IsNotFound(valErr))

	assert.False(t, xapi.IsNotFound(errors.New("plain error")))
	assert.False(t, xapi.IsNotFound(nil))
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	limited := fmt.Errorf("search-recent: %w", &xapi.Error{
		Kind:       xapi.ErrorKindRateLimited,
		Status:     429,
		RetryAfter: 60 * time.Second,
	})

	wait, ok := xapi.RetryAfter(limited)
	assert.True(t, ok)
	assert.Equal(t, 60*time.Second, wait)

	// A rate-limit error without an upstream hint reports no wait.
	noHint := &xapi.Error{Kind: xapi.ErrorKindRateLimited, Status: 429}
	_, ok = xapi.RetryAfter(noHint)
	assert.False(t, ok)

	// Non-rate-limit errors never carry a hint.
	_, ok = xapi.RetryAfter(&xapi.Error{Kind: xapi.ErrorKindNotFound, RetryAfter: time.Second})
	assert.False(t, ok)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParseProblems(t *testing.T) {
	t.Parallel()

	t.Run("errors envelope", func(t *testing.T) {
		t.Parallel()

		problems, err := xapi.ParseProblems([]byte(`{
			"errors": [{"title": "Not Found Error", "detail": "Could not find user.", "resource_id": "999"}]
		}`))
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, "Not Found Error", problems[0].Title)
		assert.Equal(t, "999", problems[0].ResourceID)
	})

	t.Run("bare array", func(t *testing.T) {
		t.Parallel()

		problems, err := xapi.ParseProblems([]byte(`[{"title": "a"}, {"title": "b"}]`))
		require.NoError(t, err)
		assert.Len(t, problems, 2)
	})

	t.Run("single problem object", func(t *testing.T) {
		t.Parallel()

		problems, err := xapi.ParseProblems([]byte(`{
			"title": "Unauthorized",
			"detail": "Unauthorized",
			"type": "about:blank"
		}`))
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, "about:blank", problems[0].Type)
	})

	t.Run("unrecognized body", func(t *testing.T) {
		t.Parallel()

		_, err := xapi.ParseProblems([]byte(`<html>Bad Gateway</html>`))
		require.Error(t, err)
	})

	t.Run("json without problem shape", func(t *testing.T) {
		t.Parallel()

		_, err := xapi.ParseProblems([]byte(`{"status": "down"}`))
		require.Error(t, err)
	})
}

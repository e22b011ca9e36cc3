package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParam(t *testing.T) {
	cases := []struct {
		name      string
		pair      string
		wantKey   string
		wantValue interface{}
	}{
		{
			name:      "string value",
			pair:      "username=x",
			wantKey:   "username",
			wantValue: "x",
		},
		{
			name:      "integer value",
			pair:      "max_results=25",
			wantKey:   "max_results",
			wantValue: 25,
		},
		{
			name:      "comma list",
			pair:      "ids=1,2,3",
			wantKey:   "ids",
			wantValue: []string{"1", "2", "3"},
		},
		{
			name:      "value containing an equals sign",
			pair:      "query=lang=en golang",
			wantKey:   "query",
			wantValue: "lang=en golang",
		},
		{
			name:      "empty value",
			pair:      "pagination_token=",
			wantKey:   "pagination_token",
			wantValue: "",
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			key, value, err := ParseParam(testCase.pair)
			require.NoError(t, err)
			assert.Equal(t, testCase.wantKey, key)
			assert.Equal(t, testCase.wantValue, value)
		})
	}

	t.Run("malformed pairs", func(t *testing.T) {
		for _, pair := range []string{"no-separator", "=value", ""} {
			_, _, err := ParseParam(pair)
			require.Error(t, err, "pair %q", pair)
			assert.True(t, errors.Is(err, ErrInvalidParam))
		}
	})
}

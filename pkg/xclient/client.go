// Package xclient provides the main entry point for creating X API gateway clients
package xclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/xapi-client/internal/constants"
	"github.com/fivetwenty-io/xapi-client/internal/gateway"
	internalhttp "github.com/fivetwenty-io/xapi-client/internal/http"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// New creates a new X API gateway client from the given configuration.
// The bearer token is the only credential; it is loaded once and used for
// the process lifetime.
func New(config *xapi.Config) (xapi.Client, error) {
	if config == nil {
		return nil, xapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		config.APIEndpoint = constants.DefaultAPIEndpoint
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	httpClient := internalhttp.NewClient(config.APIEndpoint, config.BearerToken, httpOptions(config)...)

	return gateway.New(httpClient), nil
}

// httpOptions builds transport options from config.
func httpOptions(config *xapi.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// NewWithToken creates a new client against the default endpoint with just
// a bearer token.
func NewWithToken(token string) (xapi.Client, error) {
	return New(&xapi.Config{
		BearerToken: token,
	})
}

// NewFromEnv creates a new client from the X_BEARER_TOKEN environment
// variable. A missing token is a construction error, not a per-call error.
func NewFromEnv() (xapi.Client, error) {
	token := os.Getenv(constants.EnvBearerToken)
	if token == "" {
		return nil, fmt.Errorf("%w: set %s", xapi.ErrBearerTokenMissing, constants.EnvBearerToken)
	}

	return NewWithToken(token)
}

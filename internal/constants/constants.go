package constants

import "time"

// Upstream endpoint and credential loading.
const (
	// DefaultAPIEndpoint is the base URL of the X API v2.
	DefaultAPIEndpoint = "https://api.x.com/2"

	// EnvBearerToken is the environment variable holding the app-only
	// bearer token.
	EnvBearerToken = "X_BEARER_TOKEN"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-call timeout for HTTP requests.
	DefaultHTTPTimeout = 10 * time.Second
)

// Retry limits. Only network-level failures are retried; HTTP responses,
// including 429 and 5xx, pass through to the normalizer untouched.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 2

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 4 * time.Second
)

// Batching and diagnostics limits.
const (
	// MaxIDsPerBatch is the upstream limit on ids per batch lookup.
	MaxIDsPerBatch = 100

	// MaxBodySnippet bounds how much of a raw body is attached to a
	// malformed-response error for diagnosis.
	MaxBodySnippet = 512
)

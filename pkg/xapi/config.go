package xapi

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config represents client configuration for building a xapi.Client.
//
// The gateway authenticates every request with a single static app-only
// bearer token; there is no refresh flow. The token is treated as immutable
// for the process lifetime and is never logged.
type Config struct {
	// APIEndpoint: base URL for the X API (e.g. "https://api.x.com/2").
	// xclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// BearerToken: static app-only credential from the developer portal.
	// Required.
	BearerToken string

	// HTTPTimeout: per-call timeout applied by the transport. Defaults to
	// 10s when zero. Callers can tighten it further via context.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of retries for network-level failures. HTTP
	// responses, including 429 and 5xx, are never retried by the transport.
	// Defaults to 2 when zero.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided. The Authorization header is never included.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}

const maxConfiguredRetries = 10

// Validate checks that the configuration can produce a working client.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.APIEndpoint, validation.Required, is.URL),
		validation.Field(&c.BearerToken, validation.Required),
		validation.Field(&c.RetryMax, validation.Min(0), validation.Max(maxConfiguredRetries)),
	)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

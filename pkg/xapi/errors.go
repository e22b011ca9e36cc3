package xapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies gateway failures.
type ErrorKind string

const (
	// ErrorKindTimeout is a network timeout after the retry budget is spent.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindConnection is a network-level failure (reset, refused, DNS).
	ErrorKindConnection ErrorKind = "connection_failed"

	// ErrorKindRateLimited is an upstream 429; never retried internally.
	ErrorKindRateLimited ErrorKind = "rate_limited"

	// ErrorKindBadRequest is an upstream 400 or another non-mapped 4xx.
	ErrorKindBadRequest ErrorKind = "bad_request"

	// ErrorKindUnauthorized is an upstream 401; the credential is static,
	// so retrying cannot help.
	ErrorKindUnauthorized ErrorKind = "unauthorized"

	// ErrorKindForbidden is an upstream 403.
	ErrorKindForbidden ErrorKind = "forbidden"

	// ErrorKindNotFound is an upstream 404.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindUpstreamUnavailable is an upstream 5xx or an error body the
	// gateway could not parse.
	ErrorKindUpstreamUnavailable ErrorKind = "upstream_unavailable"

	// ErrorKindMalformedResponse is a success status with an undecodable body.
	ErrorKindMalformedResponse ErrorKind = "malformed_response"
)

// Problem is one upstream-reported error object, either from an error
// response body or from the `errors` key of a partial-failure envelope.
type Problem struct {
	Title        string `json:"title,omitempty"         yaml:"title,omitempty"`
	Detail       string `json:"detail,omitempty"        yaml:"detail,omitempty"`
	Type         string `json:"type,omitempty"          yaml:"type,omitempty"`
	Parameter    string `json:"parameter,omitempty"     yaml:"parameter,omitempty"`
	Value        string `json:"value,omitempty"         yaml:"value,omitempty"`
	ResourceType string `json:"resource_type,omitempty" yaml:"resource_type,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"   yaml:"resource_id,omitempty"`
}

// Error is the gateway-facing error for anything past parameter validation.
type Error struct {
	Kind   ErrorKind
	Status int
	Detail string
	// RetryAfter is populated for rate-limited errors when the upstream
	// provided a reset hint.
	RetryAfter time.Duration
	Problems   []Problem
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Detail)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// FirstProblem returns the first upstream-reported problem or nil.
func (e *Error) FirstProblem() *Problem {
	if len(e.Problems) > 0 {
		return &e.Problems[0]
	}

	return nil
}

// ValidationCode names the reason a call failed before reaching the network.
type ValidationCode string

const (
	// ValidationMissingParameter means a required parameter was not supplied.
	ValidationMissingParameter ValidationCode = "missing_parameter"

	// ValidationUnknownParameter means a parameter is not declared by the
	// operation; unknown names are rejected, never silently dropped.
	ValidationUnknownParameter ValidationCode = "unknown_parameter"

	// ValidationBatchTooLarge means an ID batch exceeded the operation limit.
	ValidationBatchTooLarge ValidationCode = "batch_too_large"

	// ValidationOutOfRange means a numeric parameter fell outside its
	// documented bounds.
	ValidationOutOfRange ValidationCode = "out_of_range"

	// ValidationInvalidType means a parameter value does not match the
	// operation's declared type for it.
	ValidationInvalidType ValidationCode = "invalid_type"
)

// ValidationError is returned synchronously before any network call is made.
type ValidationError struct {
	Code  ValidationCode
	Param string
	Limit int
	Given int
	Min   int
	Max   int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Code {
	case ValidationMissingParameter:
		return fmt.Sprintf("missing required parameter %q", e.Param)
	case ValidationUnknownParameter:
		return fmt.Sprintf("unknown parameter %q", e.Param)
	case ValidationBatchTooLarge:
		return fmt.Sprintf("parameter %q: %d ids given, limit is %d", e.Param, e.Given, e.Limit)
	case ValidationOutOfRange:
		return fmt.Sprintf("parameter %q: %d outside allowed range [%d, %d]", e.Param, e.Given, e.Min, e.Max)
	case ValidationInvalidType:
		return fmt.Sprintf("parameter %q has an invalid type", e.Param)
	default:
		return fmt.Sprintf("invalid parameter %q", e.Param)
	}
}

// Common static errors that can be wrapped with context.
var (
	ErrOperationNotFound  = errors.New("operation not found")
	ErrBearerTokenMissing = errors.New("bearer token is required")
	ErrConfigRequired     = errors.New("config is required")
	ErrEndpointRequired   = errors.New("API endpoint is required")
)

// IsValidation checks if the error is a pre-network validation failure.
func IsValidation(err error) bool {
	valErr := &ValidationError{}

	return errors.As(err, &valErr)
}

func isKind(err error, kind ErrorKind) bool {
	gwErr := &Error{}
	if errors.As(err, &gwErr) {
		return gwErr.Kind == kind
	}

	return false
}

// IsNotFound checks if the error is an upstream not-found error.
func IsNotFound(err error) bool {
	return isKind(err, ErrorKindNotFound)
}

// IsUnauthorized checks if the error is an upstream authentication error.
func IsUnauthorized(err error) bool {
	return isKind(err, ErrorKindUnauthorized)
}

// IsForbidden checks if the error is an upstream authorization error.
func IsForbidden(err error) bool {
	return isKind(err, ErrorKindForbidden)
}

// IsRateLimited checks if the error is an upstream 429.
func IsRateLimited(err error) bool {
	return isKind(err, ErrorKindRateLimited)
}

// RetryAfter extracts the upstream backoff hint from a rate-limited error.
func RetryAfter(err error) (time.Duration, bool) {
	gwErr := &Error{}
	if errors.As(err, &gwErr) && gwErr.Kind == ErrorKindRateLimited && gwErr.RetryAfter > 0 {
		return gwErr.RetryAfter, true
	}

	return 0, false
}

// ParseProblems parses the upstream error body. Accepted shapes, in order:
// {"errors":[...]}, a bare array of problem objects, and a single top-level
// problem object ({"title":...,"detail":...,"type":...}).
func ParseProblems(data []byte) ([]Problem, error) {
	var envelope struct {
		Errors []Problem `json:"errors"`
	}

	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Errors) > 0 {
		return envelope.Errors, nil
	}

	var problems []Problem
	if err := json.Unmarshal(data, &problems); err == nil {
		return problems, nil
	}

	var single Problem
	if err := json.Unmarshal(data, &single); err == nil && (single.Title != "" || single.Detail != "") {
		return []Problem{single}, nil
	}

	return nil, fmt.Errorf("%w: %.100s", errUnrecognizedErrorBody, string(data))
}

var errUnrecognizedErrorBody = errors.New("unrecognized error body")

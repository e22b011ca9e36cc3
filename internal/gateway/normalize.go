package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fivetwenty-io/xapi-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/xapi-client/internal/http"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// envelope is the upstream response wrapper. `data` and `errors` may
// co-occur: batch lookups return 200 with data for resolved items and
// errors for the rest.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	Includes *xapi.Includes  `json:"includes"`
	Meta     *xapi.Meta      `json:"meta"`
	Errors   []xapi.Problem  `json:"errors"`
}

// Normalize converts the raw upstream response into the stable caller
// contract: a Result for success statuses (partial errors included) or a
// classified gateway error for everything else.
func Normalize(op *Operation, resp *internalhttp.Response) (*xapi.Result, error) {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return normalizeSuccess(resp)
	}

	return nil, mapStatusError(resp)
}

func normalizeSuccess(resp *internalhttp.Response) (*xapi.Result, error) {
	var env envelope

	err := json.Unmarshal(resp.Body, &env)
	if err != nil {
		return nil, &xapi.Error{
			Kind:   xapi.ErrorKindMalformedResponse,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("undecodable success body: %v: %s", err, bodySnippet(resp.Body)),
		}
	}

	// Zero matching items is still success; the partial errors say why.
	result := &xapi.Result{
		Data:          env.Data,
		Includes:      env.Includes,
		Meta:          env.Meta,
		PartialErrors: env.Errors,
	}

	if env.Meta != nil && env.Meta.NextToken != "" {
		result.Pagination = &xapi.Pagination{NextCursor: env.Meta.NextToken}
	}

	return result, nil
}

// mapStatusError maps a non-2xx response onto the error taxonomy. 429 is
// classified first so a rate-limit response without a parseable body still
// carries its backoff hint.
func mapStatusError(resp *internalhttp.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &xapi.Error{
			Kind:       xapi.ErrorKindRateLimited,
			Status:     resp.StatusCode,
			Detail:     errorDetail(resp.Body, "rate limit exceeded"),
			RetryAfter: retryAfterHint(resp),
			Problems:   parsedProblems(resp.Body),
		}
	}

	// The status alone determines the kind; the body, when it yields
	// problems, only enriches Detail. A body that is not JSON at all means
	// the response never came from the API proper.
	if !json.Valid(resp.Body) {
		return &xapi.Error{
			Kind:   xapi.ErrorKindUpstreamUnavailable,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("upstream returned status %d with unparseable body", resp.StatusCode),
		}
	}

	gwErr := &xapi.Error{
		Status:   resp.StatusCode,
		Detail:   errorDetail(resp.Body, http.StatusText(resp.StatusCode)),
		Problems: parsedProblems(resp.Body),
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		gwErr.Kind = xapi.ErrorKindUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		gwErr.Kind = xapi.ErrorKindForbidden
	case resp.StatusCode == http.StatusNotFound:
		gwErr.Kind = xapi.ErrorKindNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		gwErr.Kind = xapi.ErrorKindUpstreamUnavailable
	default:
		gwErr.Kind = xapi.ErrorKindBadRequest
	}

	return gwErr
}

func parsedProblems(body []byte) []xapi.Problem {
	problems, err := xapi.ParseProblems(body)
	if err != nil {
		return nil
	}

	return problems
}

// errorDetail extracts the first reported problem, preferring detail over
// title, falling back to the given default.
func errorDetail(body []byte, fallback string) string {
	problems, err := xapi.ParseProblems(body)
	if err != nil || len(problems) == 0 {
		return fallback
	}

	if problems[0].Detail != "" {
		return problems[0].Detail
	}

	if problems[0].Title != "" {
		return problems[0].Title
	}

	return fallback
}

// retryAfterHint reads the upstream backoff signal: Retry-After in seconds
// or HTTP-date form, or x-rate-limit-reset as a Unix timestamp for the
// window reset.
func retryAfterHint(resp *internalhttp.Response) time.Duration {
	if value := resp.Headers.Get("Retry-After"); value != "" {
		seconds, err := strconv.Atoi(value)
		if err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}

		if at, err := http.ParseTime(value); err == nil {
			if until := time.Until(at); until > 0 {
				return until
			}
		}
	}

	if value := resp.Headers.Get("x-rate-limit-reset"); value != "" {
		reset, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			until := time.Until(time.Unix(reset, 0))
			if until > 0 {
				return until
			}
		}
	}

	return 0
}

func bodySnippet(body []byte) string {
	if len(body) > constants.MaxBodySnippet {
		return string(body[:constants.MaxBodySnippet]) + "..."
	}

	return string(body)
}

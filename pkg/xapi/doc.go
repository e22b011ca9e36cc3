// Package xapi provides types, interfaces, and helpers for the read-only
// X API v2 gateway.
//
// # Overview
//
// The xapi package defines the domain types (User, Tweet, List, TweetCount),
// the normalized result and error model, and the interfaces for the generic
// dispatcher and the typed resource clients (UsersClient, TweetsClient,
// SearchClient, ListsClient). A concrete implementation is provided by the
// xclient package, which wires configuration, transport, and authentication.
// Most consumers should import xclient to construct a client and then
// interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/xapi-client/pkg/xclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := xclient.NewFromEnv() // reads X_BEARER_TOKEN
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.Users().GetByUsername(ctx, "x")
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// # Dispatch and results
//
// Every operation is a named registry entry; Dispatch validates arguments
// against the operation's schema before any network call and returns either
// a *Result or an error from the taxonomy in this package. Partial failures
// reported by the upstream on a 2xx response are attached to the Result as
// PartialErrors rather than escalated to a hard failure:
//
//	res, err := cli.Dispatch(ctx, "tweets-batch", xapi.Args{"ids": []string{"1", "2"}})
//	if err != nil { log.Fatal(err) }
//	for _, p := range res.PartialErrors {
//	  log.Println("not resolved:", p.Detail)
//	}
//
// # Errors
//
// Errors are classified by kind (validation, rate_limited, not_found, ...)
// and can be inspected with errors.As or the helpers IsNotFound,
// IsRateLimited, IsUnauthorized, IsForbidden, and RetryAfter. A 429 is never
// retried internally; the upstream backoff hint is surfaced so the caller
// can schedule its own retry.
package xapi

// Package xclient provides the primary entry point for constructing an
// X API v2 gateway client that implements the xapi.Client interface.
//
// It layers configuration, HTTP transport, and bearer authentication on top
// of the operation registry and types defined in the xapi package. Most
// applications should import xclient to build a client, then use the
// returned xapi.Client to dispatch named operations or access the typed
// resource clients: Users(), Tweets(), Search(), Lists().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/xapi-client/pkg/xapi"
//	  "github.com/fivetwenty-io/xapi-client/pkg/xclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // From the environment (X_BEARER_TOKEN):
//	  cli, err := xclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an explicit token and options:
//	  cli, err = xclient.New(&xapi.Config{
//	    BearerToken: "AAAA...",
//	    RetryMax:    2,
//	  })
//
//	  res, err := cli.Dispatch(ctx, "search-recent", xapi.Args{"query": "golang"})
//	  if err != nil { log.Fatal(err) }
//	  _ = res
//	}
//
// The credential is static for the process lifetime; there is no refresh
// flow and no per-call credential routing.
package xclient

package gateway

import (
	"context"
	"fmt"

	internalhttp "github.com/fivetwenty-io/xapi-client/internal/http"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// Dispatcher implements the xapi.Client interface. It is stateless across
// calls; the only shared state is the immutable credential held by the
// transport, so concurrent dispatches need no coordination.
type Dispatcher struct {
	registry   *Registry
	httpClient *internalhttp.Client

	// Resource clients
	users  xapi.UsersClient
	tweets xapi.TweetsClient
	search xapi.SearchClient
	lists  xapi.ListsClient
}

// New creates a dispatcher over the given transport.
func New(httpClient *internalhttp.Client) *Dispatcher {
	dispatcher := &Dispatcher{
		registry:   NewRegistry(),
		httpClient: httpClient,
	}

	dispatcher.users = NewUsersClient(dispatcher)
	dispatcher.tweets = NewTweetsClient(dispatcher)
	dispatcher.search = NewSearchClient(dispatcher)
	dispatcher.lists = NewListsClient(dispatcher)

	return dispatcher
}

// Dispatch implements xapi.Dispatcher.Dispatch: registry lookup, argument
// validation and encoding, authenticated transport, response normalization.
func (d *Dispatcher) Dispatch(ctx context.Context, operation string, args xapi.Args) (*xapi.Result, error) {
	op, err := d.registry.Lookup(operation)
	if err != nil {
		return nil, err
	}

	req, err := Encode(op, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	resp, err := d.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	result, err := Normalize(op, resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return result, nil
}

// Operations implements xapi.Dispatcher.Operations.
func (d *Dispatcher) Operations() []xapi.OperationInfo {
	return d.registry.Operations()
}

// Users implements xapi.Client.Users.
func (d *Dispatcher) Users() xapi.UsersClient {
	return d.users
}

// Tweets implements xapi.Client.Tweets.
func (d *Dispatcher) Tweets() xapi.TweetsClient {
	return d.tweets
}

// Search implements xapi.Client.Search.
func (d *Dispatcher) Search() xapi.SearchClient {
	return d.search
}

// Lists implements xapi.Client.Lists.
func (d *Dispatcher) Lists() xapi.ListsClient {
	return d.lists
}

// pageArgs merges page options into an argument map. tokenParam names the
// cursor parameter, which differs between endpoint families
// (pagination_token for timelines and follows, next_token for search).
func pageArgs(base xapi.Args, opts *xapi.PageOptions, tokenParam string) xapi.Args {
	if opts == nil {
		return base
	}

	if opts.MaxResults > 0 {
		base["max_results"] = opts.MaxResults
	}

	if opts.PaginationToken != "" {
		base[tokenParam] = opts.PaginationToken
	}

	return base
}

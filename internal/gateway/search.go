package gateway

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// SearchClient implements xapi.SearchClient on top of the dispatcher.
type SearchClient struct {
	dispatcher *Dispatcher
}

// NewSearchClient creates a new search client.
func NewSearchClient(dispatcher *Dispatcher) *SearchClient {
	return &SearchClient{dispatcher: dispatcher}
}

// Recent implements xapi.SearchClient.Recent. The recent search index
// covers roughly the last seven days.
func (c *SearchClient) Recent(ctx context.Context, query string, opts *xapi.PageOptions) (*xapi.TweetList, error) {
	args := pageArgs(xapi.Args{"query": query}, opts, "next_token")

	result, err := c.dispatcher.Dispatch(ctx, "search-recent", args)
	if err != nil {
		return nil, fmt.Errorf("searching recent tweets: %w", err)
	}

	return decodeTweetList(result, "parsing search results")
}

// RecentCounts implements xapi.SearchClient.RecentCounts.
func (c *SearchClient) RecentCounts(ctx context.Context, query string) (*xapi.TweetCounts, error) {
	result, err := c.dispatcher.Dispatch(ctx, "count-recent", xapi.Args{"query": query})
	if err != nil {
		return nil, fmt.Errorf("counting recent tweets: %w", err)
	}

	var counts []xapi.TweetCount

	err = result.DecodeData(&counts)
	if err != nil {
		return nil, fmt.Errorf("parsing counts: %w", err)
	}

	return &xapi.TweetCounts{
		Counts: counts,
		Meta:   result.Meta,
	}, nil
}

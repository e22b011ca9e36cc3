package gateway

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// ListsClient implements xapi.ListsClient on top of the dispatcher.
type ListsClient struct {
	dispatcher *Dispatcher
}

// NewListsClient creates a new lists client.
func NewListsClient(dispatcher *Dispatcher) *ListsClient {
	return &ListsClient{dispatcher: dispatcher}
}

// Get implements xapi.ListsClient.Get.
func (c *ListsClient) Get(ctx context.Context, listID string) (*xapi.List, error) {
	result, err := c.dispatcher.Dispatch(ctx, "list-by-id", xapi.Args{"id": listID})
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	var list xapi.List

	err = result.DecodeData(&list)
	if err != nil {
		return nil, fmt.Errorf("parsing list: %w", err)
	}

	return &list, nil
}

// Tweets implements xapi.ListsClient.Tweets.
func (c *ListsClient) Tweets(ctx context.Context, listID string, opts *xapi.PageOptions) (*xapi.TweetList, error) {
	args := pageArgs(xapi.Args{"id": listID}, opts, "pagination_token")

	result, err := c.dispatcher.Dispatch(ctx, "list-tweets", args)
	if err != nil {
		return nil, fmt.Errorf("getting list tweets: %w", err)
	}

	return decodeTweetList(result, "parsing list tweets")
}

// OwnedBy implements xapi.ListsClient.OwnedBy.
func (c *ListsClient) OwnedBy(ctx context.Context, userID string, opts *xapi.PageOptions) (*xapi.ListPage, error) {
	args := pageArgs(xapi.Args{"id": userID}, opts, "pagination_token")

	result, err := c.dispatcher.Dispatch(ctx, "user-owned-lists", args)
	if err != nil {
		return nil, fmt.Errorf("getting owned lists: %w", err)
	}

	var lists []xapi.List

	err = result.DecodeData(&lists)
	if err != nil {
		return nil, fmt.Errorf("parsing owned lists: %w", err)
	}

	return &xapi.ListPage{
		Lists: lists,
		Meta:  result.Meta,
	}, nil
}

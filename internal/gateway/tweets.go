package gateway

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// TweetsClient implements xapi.TweetsClient on top of the dispatcher.
type TweetsClient struct {
	dispatcher *Dispatcher
}

// NewTweetsClient creates a new tweets client.
func NewTweetsClient(dispatcher *Dispatcher) *TweetsClient {
	return &TweetsClient{dispatcher: dispatcher}
}

// Get implements xapi.TweetsClient.Get.
func (c *TweetsClient) Get(ctx context.Context, tweetID string) (*xapi.Tweet, error) {
	result, err := c.dispatcher.Dispatch(ctx, "tweet-by-id", xapi.Args{"id": tweetID})
	if err != nil {
		return nil, fmt.Errorf("getting tweet: %w", err)
	}

	var tweet xapi.Tweet

	err = result.DecodeData(&tweet)
	if err != nil {
		return nil, fmt.Errorf("parsing tweet: %w", err)
	}

	return &tweet, nil
}

// List implements xapi.TweetsClient.List. Unresolvable IDs come back as
// partial errors on the list, not as a call failure.
func (c *TweetsClient) List(ctx context.Context, tweetIDs []string) (*xapi.TweetList, error) {
	result, err := c.dispatcher.Dispatch(ctx, "tweets-batch", xapi.Args{"ids": tweetIDs})
	if err != nil {
		return nil, fmt.Errorf("listing tweets: %w", err)
	}

	return decodeTweetList(result, "parsing tweets")
}

// UserTimeline implements xapi.TweetsClient.UserTimeline.
func (c *TweetsClient) UserTimeline(ctx context.Context, userID string, opts *xapi.PageOptions) (*xapi.TweetList, error) {
	args := pageArgs(xapi.Args{"id": userID}, opts, "pagination_token")

	result, err := c.dispatcher.Dispatch(ctx, "user-timeline", args)
	if err != nil {
		return nil, fmt.Errorf("getting user timeline: %w", err)
	}

	return decodeTweetList(result, "parsing timeline")
}

// UserMentions implements xapi.TweetsClient.UserMentions.
func (c *TweetsClient) UserMentions(ctx context.Context, userID string, opts *xapi.PageOptions) (*xapi.TweetList, error) {
	args := pageArgs(xapi.Args{"id": userID}, opts, "pagination_token")

	result, err := c.dispatcher.Dispatch(ctx, "user-mentions", args)
	if err != nil {
		return nil, fmt.Errorf("getting user mentions: %w", err)
	}

	return decodeTweetList(result, "parsing mentions")
}

func decodeTweetList(result *xapi.Result, parseContext string) (*xapi.TweetList, error) {
	var tweets []xapi.Tweet

	err := result.DecodeData(&tweets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", parseContext, err)
	}

	return &xapi.TweetList{
		Tweets:        tweets,
		Includes:      result.Includes,
		Meta:          result.Meta,
		PartialErrors: result.PartialErrors,
	}, nil
}

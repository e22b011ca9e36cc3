package gateway

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// UsersClient implements xapi.UsersClient on top of the dispatcher.
type UsersClient struct {
	dispatcher *Dispatcher
}

// NewUsersClient creates a new users client.
func NewUsersClient(dispatcher *Dispatcher) *UsersClient {
	return &UsersClient{dispatcher: dispatcher}
}

// Get implements xapi.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*xapi.User, error) {
	result, err := c.dispatcher.Dispatch(ctx, "user-by-id", xapi.Args{"id": userID})
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user xapi.User

	err = result.DecodeData(&user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// GetByUsername implements xapi.UsersClient.GetByUsername.
func (c *UsersClient) GetByUsername(ctx context.Context, username string) (*xapi.User, error) {
	result, err := c.dispatcher.Dispatch(ctx, "user-by-username", xapi.Args{"username": username})
	if err != nil {
		return nil, fmt.Errorf("getting user by username: %w", err)
	}

	var user xapi.User

	err = result.DecodeData(&user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// List implements xapi.UsersClient.List. Unresolvable IDs come back as
// partial errors on the list, not as a call failure.
func (c *UsersClient) List(ctx context.Context, userIDs []string) (*xapi.UserList, error) {
	result, err := c.dispatcher.Dispatch(ctx, "users-batch", xapi.Args{"ids": userIDs})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return decodeUserList(result, "parsing users")
}

// Followers implements xapi.UsersClient.Followers.
func (c *UsersClient) Followers(ctx context.Context, userID string, opts *xapi.PageOptions) (*xapi.UserList, error) {
	args := pageArgs(xapi.Args{"id": userID}, opts, "pagination_token")

	result, err := c.dispatcher.Dispatch(ctx, "followers", args)
	if err != nil {
		return nil, fmt.Errorf("listing followers: %w", err)
	}

	return decodeUserList(result, "parsing followers")
}

// Following implements xapi.UsersClient.Following.
func (c *UsersClient) Following(ctx context.Context, userID string, opts *xapi.PageOptions) (*xapi.UserList, error) {
	args := pageArgs(xapi.Args{"id": userID}, opts, "pagination_token")

	result, err := c.dispatcher.Dispatch(ctx, "following", args)
	if err != nil {
		return nil, fmt.Errorf("listing following: %w", err)
	}

	return decodeUserList(result, "parsing following")
}

func decodeUserList(result *xapi.Result, parseContext string) (*xapi.UserList, error) {
	var users []xapi.User

	err := result.DecodeData(&users)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", parseContext, err)
	}

	return &xapi.UserList{
		Users:         users,
		Meta:          result.Meta,
		PartialErrors: result.PartialErrors,
	}, nil
}

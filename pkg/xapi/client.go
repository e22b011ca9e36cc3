package xapi

import (
	"context"
)

// Args is the raw argument mapping a caller passes to Dispatch. Values are
// scalars (string, int) or lists of strings, matched against the
// operation's declared parameter schema.
type Args map[string]interface{}

// PageOptions tunes collection operations. Zero values mean "use the
// upstream default".
type PageOptions struct {
	// MaxResults requests a page size; each operation documents its own
	// allowed range and rejects values outside it before any network call.
	MaxResults int
	// PaginationToken resumes iteration from a cursor returned in a prior
	// result's meta block.
	PaginationToken string
}

// OperationInfo describes one registry entry for discovery surfaces such
// as the CLI. The registry itself is immutable and GET-only.
type OperationInfo struct {
	Name     string   `json:"name"               yaml:"name"`
	Method   string   `json:"method"             yaml:"method"`
	Path     string   `json:"path"               yaml:"path"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	Optional []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Dispatcher is the single generic entry point: it resolves the named
// operation, validates and encodes arguments, issues the authenticated
// call, and normalizes the response.
type Dispatcher interface {
	Dispatch(ctx context.Context, operation string, args Args) (*Result, error)
	Operations() []OperationInfo
}

// UsersClient provides typed access to user lookup and follow operations.
type UsersClient interface {
	Get(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, userIDs []string) (*UserList, error)
	Followers(ctx context.Context, userID string, opts *PageOptions) (*UserList, error)
	Following(ctx context.Context, userID string, opts *PageOptions) (*UserList, error)
}

// TweetsClient provides typed access to tweet lookup and timeline operations.
type TweetsClient interface {
	Get(ctx context.Context, tweetID string) (*Tweet, error)
	List(ctx context.Context, tweetIDs []string) (*TweetList, error)
	UserTimeline(ctx context.Context, userID string, opts *PageOptions) (*TweetList, error)
	UserMentions(ctx context.Context, userID string, opts *PageOptions) (*TweetList, error)
}

// SearchClient provides typed access to the recent search and counts
// operations (last seven days).
type SearchClient interface {
	Recent(ctx context.Context, query string, opts *PageOptions) (*TweetList, error)
	RecentCounts(ctx context.Context, query string) (*TweetCounts, error)
}

// ListsClient provides typed access to list operations.
type ListsClient interface {
	Get(ctx context.Context, listID string) (*List, error)
	Tweets(ctx context.Context, listID string, opts *PageOptions) (*TweetList, error)
	OwnedBy(ctx context.Context, userID string, opts *PageOptions) (*ListPage, error)
}

// Client is the full gateway surface: the generic dispatcher plus the
// typed resource clients layered on top of it.
type Client interface {
	Dispatcher

	Users() UsersClient
	Tweets() TweetsClient
	Search() SearchClient
	Lists() ListsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

package xapi

import (
	"encoding/json"
	"time"
)

// User represents an X user profile.
type User struct {
	ID              string             `json:"id"                          yaml:"id"`
	Username        string             `json:"username"                    yaml:"username"`
	Name            string             `json:"name"                        yaml:"name"`
	CreatedAt       time.Time          `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
	Description     string             `json:"description,omitempty"       yaml:"description,omitempty"`
	Location        string             `json:"location,omitempty"          yaml:"location,omitempty"`
	ProfileImageURL string             `json:"profile_image_url,omitempty" yaml:"profile_image_url,omitempty"`
	Protected       bool               `json:"protected,omitempty"         yaml:"protected,omitempty"`
	Verified        bool               `json:"verified,omitempty"          yaml:"verified,omitempty"`
	PinnedTweetID   string             `json:"pinned_tweet_id,omitempty"   yaml:"pinned_tweet_id,omitempty"`
	PublicMetrics   *UserPublicMetrics `json:"public_metrics,omitempty"    yaml:"public_metrics,omitempty"`
}

// UserPublicMetrics holds the public engagement counters of a user.
type UserPublicMetrics struct {
	FollowersCount int `json:"followers_count" yaml:"followers_count"`
	FollowingCount int `json:"following_count" yaml:"following_count"`
	TweetCount     int `json:"tweet_count"     yaml:"tweet_count"`
	ListedCount    int `json:"listed_count"    yaml:"listed_count"`
}

// Tweet represents a single post.
type Tweet struct {
	ID             string              `json:"id"                        yaml:"id"`
	Text           string              `json:"text"                      yaml:"text"`
	AuthorID       string              `json:"author_id,omitempty"       yaml:"author_id,omitempty"`
	ConversationID string              `json:"conversation_id,omitempty" yaml:"conversation_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	Lang           string              `json:"lang,omitempty"            yaml:"lang,omitempty"`
	PublicMetrics  *TweetPublicMetrics `json:"public_metrics,omitempty"  yaml:"public_metrics,omitempty"`
	// Entities is kept raw; its shape varies widely by tweet content.
	Entities json.RawMessage `json:"entities,omitempty" yaml:"entities,omitempty"`
}

// TweetPublicMetrics holds the public engagement counters of a tweet.
type TweetPublicMetrics struct {
	RetweetCount    int `json:"retweet_count"              yaml:"retweet_count"`
	ReplyCount      int `json:"reply_count"                yaml:"reply_count"`
	LikeCount       int `json:"like_count"                 yaml:"like_count"`
	QuoteCount      int `json:"quote_count"                yaml:"quote_count"`
	ImpressionCount int `json:"impression_count,omitempty" yaml:"impression_count,omitempty"`
}

// List represents an X list.
type List struct {
	ID            string    `json:"id"                       yaml:"id"`
	Name          string    `json:"name"                     yaml:"name"`
	Description   string    `json:"description,omitempty"    yaml:"description,omitempty"`
	FollowerCount int       `json:"follower_count,omitempty" yaml:"follower_count,omitempty"`
	MemberCount   int       `json:"member_count,omitempty"   yaml:"member_count,omitempty"`
	OwnerID       string    `json:"owner_id,omitempty"       yaml:"owner_id,omitempty"`
	Private       bool      `json:"private,omitempty"        yaml:"private,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"     yaml:"created_at,omitempty"`
}

// TweetCount is one bucket of the recent counts endpoint.
type TweetCount struct {
	Start      time.Time `json:"start"       yaml:"start"`
	End        time.Time `json:"end"         yaml:"end"`
	TweetCount int       `json:"tweet_count" yaml:"tweet_count"`
}

// Includes carries entities side-loaded by field expansions.
type Includes struct {
	Users  []User  `json:"users,omitempty"  yaml:"users,omitempty"`
	Tweets []Tweet `json:"tweets,omitempty" yaml:"tweets,omitempty"`
}

// Meta is the envelope metadata block returned alongside collections.
type Meta struct {
	ResultCount     int    `json:"result_count,omitempty"      yaml:"result_count,omitempty"`
	NextToken       string `json:"next_token,omitempty"        yaml:"next_token,omitempty"`
	PreviousToken   string `json:"previous_token,omitempty"    yaml:"previous_token,omitempty"`
	NewestID        string `json:"newest_id,omitempty"         yaml:"newest_id,omitempty"`
	OldestID        string `json:"oldest_id,omitempty"         yaml:"oldest_id,omitempty"`
	TotalTweetCount int    `json:"total_tweet_count,omitempty" yaml:"total_tweet_count,omitempty"`
}

// Pagination is the cursor state derived from Meta.
type Pagination struct {
	NextCursor string `json:"next_cursor" yaml:"next_cursor"`
}

// UserList is a collection of users with its envelope metadata.
type UserList struct {
	Users         []User    `json:"users"                    yaml:"users"`
	Meta          *Meta     `json:"meta,omitempty"           yaml:"meta,omitempty"`
	PartialErrors []Problem `json:"partial_errors,omitempty" yaml:"partial_errors,omitempty"`
}

// TweetList is a collection of tweets with side-loaded entities and metadata.
type TweetList struct {
	Tweets        []Tweet   `json:"tweets"                   yaml:"tweets"`
	Includes      *Includes `json:"includes,omitempty"       yaml:"includes,omitempty"`
	Meta          *Meta     `json:"meta,omitempty"           yaml:"meta,omitempty"`
	PartialErrors []Problem `json:"partial_errors,omitempty" yaml:"partial_errors,omitempty"`
}

// ListPage is a collection of lists with its envelope metadata.
type ListPage struct {
	Lists []List `json:"lists"          yaml:"lists"`
	Meta  *Meta  `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// TweetCounts is the result of the recent counts operation.
type TweetCounts struct {
	Counts []TweetCount `json:"counts"         yaml:"counts"`
	Meta   *Meta        `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Total returns meta.total_tweet_count, or 0 when meta is absent.
func (c *TweetCounts) Total() int {
	if c.Meta == nil {
		return 0
	}

	return c.Meta.TotalTweetCount
}

package gateway

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/fivetwenty-io/xapi-client/internal/constants"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// ParamType is the declared type of an operation parameter.
type ParamType int

const (
	// ParamString is a scalar string value.
	ParamString ParamType = iota

	// ParamInt is an integer value bounded by Min/Max.
	ParamInt

	// ParamStringList is a list of strings, comma-joined on the wire and
	// bounded by MaxItems when the operation declares a batch limit.
	ParamStringList
)

// ParamSpec declares the type and constraints of one parameter.
type ParamSpec struct {
	Type ParamType
	// Min/Max bound ParamInt values, inclusive. Both zero means unbounded.
	Min int
	Max int
	// MaxItems bounds ParamStringList length. Zero means unbounded.
	MaxItems int
}

// Shape declares what the upstream `data` value looks like for an operation.
type Shape int

const (
	// ShapeObject means data is a single JSON object.
	ShapeObject Shape = iota

	// ShapeCollection means data is a JSON array.
	ShapeCollection
)

// Operation is one immutable registry entry. Path placeholders use the
// `:name` form and must appear in Required; every other parameter is
// serialized into the query string.
type Operation struct {
	Name         string
	Method       string
	PathTemplate string
	Required     map[string]ParamSpec
	Optional     map[string]ParamSpec
	// Defaults are query values applied only when the caller did not supply
	// the parameter, mirroring the field expansions the original tooling
	// requested on every call.
	Defaults map[string]string
	Shape    Shape
}

// Registry is the static operation table. It is populated once and never
// mutated; it contains no write operations by construction.
type Registry struct {
	ops map[string]*Operation
}

var (
	intRange = func(minVal, maxVal int) ParamSpec { return ParamSpec{Type: ParamInt, Min: minVal, Max: maxVal} }
	stringP  = ParamSpec{Type: ParamString}
	idBatchP = ParamSpec{Type: ParamStringList, MaxItems: constants.MaxIDsPerBatch}
	fieldsP  = ParamSpec{Type: ParamStringList}

	defaultUserFields  = "description,public_metrics,created_at"
	defaultTweetFields = "author_id,created_at,public_metrics,entities"
)

// NewRegistry builds the fixed catalog of read-only operations.
func NewRegistry() *Registry {
	ops := []*Operation{
		{
			Name:         "user-by-id",
			PathTemplate: "/users/:id",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"user.fields":  fieldsP,
				"expansions":   fieldsP,
				"tweet.fields": fieldsP,
			},
			Defaults: map[string]string{"user.fields": defaultUserFields},
			Shape:    ShapeObject,
		},
		{
			Name:         "user-by-username",
			PathTemplate: "/users/by/username/:username",
			Required:     map[string]ParamSpec{"username": stringP},
			Optional: map[string]ParamSpec{
				"user.fields":  fieldsP,
				"expansions":   fieldsP,
				"tweet.fields": fieldsP,
			},
			Defaults: map[string]string{"user.fields": defaultUserFields},
			Shape:    ShapeObject,
		},
		{
			Name:         "users-batch",
			PathTemplate: "/users",
			Required:     map[string]ParamSpec{"ids": idBatchP},
			Optional: map[string]ParamSpec{
				"user.fields":  fieldsP,
				"expansions":   fieldsP,
				"tweet.fields": fieldsP,
			},
			Defaults: map[string]string{"user.fields": defaultUserFields},
			Shape:    ShapeCollection,
		},
		{
			Name:         "tweet-by-id",
			PathTemplate: "/tweets/:id",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"tweet.fields": fieldsP,
				"expansions":   fieldsP,
				"user.fields":  fieldsP,
				"media.fields": fieldsP,
			},
			Defaults: map[string]string{
				"tweet.fields": defaultTweetFields,
				"expansions":   "author_id",
				"user.fields":  "username,name",
			},
			Shape: ShapeObject,
		},
		{
			Name:         "tweets-batch",
			PathTemplate: "/tweets",
			Required:     map[string]ParamSpec{"ids": idBatchP},
			Optional: map[string]ParamSpec{
				"tweet.fields": fieldsP,
				"expansions":   fieldsP,
				"user.fields":  fieldsP,
				"media.fields": fieldsP,
			},
			Defaults: map[string]string{
				"tweet.fields": defaultTweetFields,
				"expansions":   "author_id",
				"user.fields":  "username,name",
			},
			Shape: ShapeCollection,
		},
		{
			Name:         "user-timeline",
			PathTemplate: "/users/:id/tweets",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"max_results":      intRange(5, 100),
				"pagination_token": stringP,
				"tweet.fields":     fieldsP,
				"expansions":       fieldsP,
				"user.fields":      fieldsP,
			},
			Defaults: map[string]string{"tweet.fields": "created_at,public_metrics,entities"},
			Shape:    ShapeCollection,
		},
		{
			Name:         "user-mentions",
			PathTemplate: "/users/:id/mentions",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"max_results":      intRange(5, 100),
				"pagination_token": stringP,
				"tweet.fields":     fieldsP,
				"expansions":       fieldsP,
				"user.fields":      fieldsP,
			},
			Defaults: map[string]string{
				"tweet.fields": "author_id,created_at,public_metrics",
				"expansions":   "author_id",
				"user.fields":  "username,name",
			},
			Shape: ShapeCollection,
		},
		{
			Name:         "search-recent",
			PathTemplate: "/tweets/search/recent",
			Required:     map[string]ParamSpec{"query": stringP},
			Optional: map[string]ParamSpec{
				"max_results":  intRange(10, 100),
				"next_token":   stringP,
				"tweet.fields": fieldsP,
				"expansions":   fieldsP,
				"user.fields":  fieldsP,
			},
			Defaults: map[string]string{
				"tweet.fields": defaultTweetFields,
				"expansions":   "author_id",
				"user.fields":  "username,name",
			},
			Shape: ShapeCollection,
		},
		{
			Name:         "count-recent",
			PathTemplate: "/tweets/counts/recent",
			Required:     map[string]ParamSpec{"query": stringP},
			Optional: map[string]ParamSpec{
				"granularity": stringP,
				"next_token":  stringP,
			},
			Shape: ShapeCollection,
		},
		{
			Name:         "followers",
			PathTemplate: "/users/:id/followers",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"max_results":      intRange(1, 1000),
				"pagination_token": stringP,
				"user.fields":      fieldsP,
				"expansions":       fieldsP,
			},
			Defaults: map[string]string{"user.fields": defaultUserFields},
			Shape:    ShapeCollection,
		},
		{
			Name:         "following",
			PathTemplate: "/users/:id/following",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"max_results":      intRange(1, 1000),
				"pagination_token": stringP,
				"user.fields":      fieldsP,
				"expansions":       fieldsP,
			},
			Defaults: map[string]string{"user.fields": defaultUserFields},
			Shape:    ShapeCollection,
		},
		{
			Name:         "list-by-id",
			PathTemplate: "/lists/:id",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"list.fields": fieldsP,
				"expansions":  fieldsP,
				"user.fields": fieldsP,
			},
			Defaults: map[string]string{
				"list.fields": "description,follower_count,member_count,owner_id,created_at",
			},
			Shape: ShapeObject,
		},
		{
			Name:         "list-tweets",
			PathTemplate: "/lists/:id/tweets",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"max_results":      intRange(1, 100),
				"pagination_token": stringP,
				"tweet.fields":     fieldsP,
				"expansions":       fieldsP,
				"user.fields":      fieldsP,
			},
			Defaults: map[string]string{
				"tweet.fields": "author_id,created_at,public_metrics",
				"expansions":   "author_id",
				"user.fields":  "username,name",
			},
			Shape: ShapeCollection,
		},
		{
			Name:         "user-owned-lists",
			PathTemplate: "/users/:id/owned_lists",
			Required:     map[string]ParamSpec{"id": stringP},
			Optional: map[string]ParamSpec{
				"max_results":      intRange(1, 100),
				"pagination_token": stringP,
				"list.fields":      fieldsP,
				"expansions":       fieldsP,
				"user.fields":      fieldsP,
			},
			Defaults: map[string]string{
				"list.fields": "description,follower_count,member_count,created_at",
			},
			Shape: ShapeCollection,
		},
	}

	table := make(map[string]*Operation, len(ops))

	for _, op := range ops {
		op.Method = http.MethodGet
		table[op.Name] = op
	}

	return &Registry{ops: table}
}

// Lookup resolves an operation by name.
func (r *Registry) Lookup(name string) (*Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", xapi.ErrOperationNotFound, name)
	}

	return op, nil
}

// Operations returns the catalog sorted by name.
func (r *Registry) Operations() []xapi.OperationInfo {
	infos := make([]xapi.OperationInfo, 0, len(r.ops))

	for _, op := range r.ops {
		infos = append(infos, xapi.OperationInfo{
			Name:     op.Name,
			Method:   op.Method,
			Path:     op.PathTemplate,
			Required: sortedNames(op.Required),
			Optional: sortedNames(op.Optional),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	return infos
}

func sortedNames(specs map[string]ParamSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

package gateway

import (
	"net/url"
	"strconv"
	"strings"

	internalhttp "github.com/fivetwenty-io/xapi-client/internal/http"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
)

// Encode validates the caller's arguments against the operation schema and
// produces the request descriptor. Every failure here is a ValidationError
// and happens before any network call.
func Encode(op *Operation, args xapi.Args) (*internalhttp.Request, error) {
	for name := range args {
		_, isRequired := op.Required[name]
		_, isOptional := op.Optional[name]

		if !isRequired && !isOptional {
			return nil, &xapi.ValidationError{Code: xapi.ValidationUnknownParameter, Param: name}
		}
	}

	for name := range op.Required {
		if _, ok := args[name]; !ok {
			return nil, &xapi.ValidationError{Code: xapi.ValidationMissingParameter, Param: name}
		}
	}

	pathParams := placeholderNames(op.PathTemplate)

	query := url.Values{}

	for name, value := range args {
		spec := paramSpec(op, name)

		encoded, err := encodeValue(name, spec, value)
		if err != nil {
			return nil, err
		}

		if _, inPath := pathParams[name]; inPath {
			continue
		}

		query.Set(name, encoded)
	}

	// Defaults never override caller-supplied values.
	for name, value := range op.Defaults {
		if _, supplied := args[name]; !supplied {
			query.Set(name, value)
		}
	}

	path, err := resolvePath(op.PathTemplate, args)
	if err != nil {
		return nil, err
	}

	return &internalhttp.Request{
		Method: op.Method,
		Path:   path,
		Query:  query,
	}, nil
}

func paramSpec(op *Operation, name string) ParamSpec {
	if spec, ok := op.Required[name]; ok {
		return spec
	}

	return op.Optional[name]
}

// encodeValue coerces one argument to its wire form, enforcing range and
// batch constraints.
func encodeValue(name string, spec ParamSpec, value interface{}) (string, error) {
	switch spec.Type {
	case ParamString:
		str, ok := value.(string)
		if !ok {
			return "", &xapi.ValidationError{Code: xapi.ValidationInvalidType, Param: name}
		}

		return str, nil

	case ParamInt:
		num, ok := toInt(value)
		if !ok {
			return "", &xapi.ValidationError{Code: xapi.ValidationInvalidType, Param: name}
		}

		if boundedInt(spec) && (num < spec.Min || num > spec.Max) {
			return "", &xapi.ValidationError{
				Code: xapi.ValidationOutOfRange, Param: name, Min: spec.Min, Max: spec.Max, Given: num,
			}
		}

		return strconv.Itoa(num), nil

	case ParamStringList:
		items, ok := toStringList(value)
		if !ok {
			return "", &xapi.ValidationError{Code: xapi.ValidationInvalidType, Param: name}
		}

		if spec.MaxItems > 0 && len(items) > spec.MaxItems {
			return "", &xapi.ValidationError{
				Code: xapi.ValidationBatchTooLarge, Param: name, Limit: spec.MaxItems, Given: len(items),
			}
		}

		return strings.Join(items, ","), nil

	default:
		return "", &xapi.ValidationError{Code: xapi.ValidationInvalidType, Param: name}
	}
}

func boundedInt(spec ParamSpec) bool {
	return spec.Min != 0 || spec.Max != 0
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}

		return 0, false
	default:
		return 0, false
	}
}

func toStringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case string:
		// A scalar string is already in wire form; split it so each
		// comma-separated element counts against the batch cap.
		return strings.Split(v, ","), true
	case []interface{}:
		items := make([]string, 0, len(v))

		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}

			items = append(items, str)
		}

		return items, true
	default:
		return nil, false
	}
}

// placeholderNames extracts the `:name` segments of a path template.
func placeholderNames(template string) map[string]struct{} {
	names := map[string]struct{}{}

	for _, segment := range strings.Split(template, "/") {
		if strings.HasPrefix(segment, ":") {
			names[segment[1:]] = struct{}{}
		}
	}

	return names
}

// resolvePath substitutes placeholders with percent-encoded argument values.
func resolvePath(template string, args xapi.Args) (string, error) {
	segments := strings.Split(template, "/")

	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}

		name := segment[1:]

		value, ok := args[name].(string)
		if !ok {
			return "", &xapi.ValidationError{Code: xapi.ValidationInvalidType, Param: name}
		}

		segments[i] = url.PathEscape(value)
	}

	return strings.Join(segments, "/"), nil
}

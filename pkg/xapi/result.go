package xapi

import (
	"encoding/json"
	"fmt"
)

// Result is the normalized outcome of a successful operation. Data holds
// the upstream `data` value in the shape the operation declares (object for
// single lookups, array for collections). PartialErrors carries upstream
// partial failures that co-occurred with data on a 2xx response; they never
// turn the call into a failure.
type Result struct {
	Data          json.RawMessage `json:"data"                     yaml:"data"`
	Includes      *Includes       `json:"includes,omitempty"       yaml:"includes,omitempty"`
	Meta          *Meta           `json:"meta,omitempty"           yaml:"meta,omitempty"`
	Pagination    *Pagination     `json:"pagination,omitempty"     yaml:"pagination,omitempty"`
	PartialErrors []Problem       `json:"partial_errors,omitempty" yaml:"partial_errors,omitempty"`
}

// NextCursor returns the pagination cursor for the next page, or "" when
// the upstream reported no further pages.
func (r *Result) NextCursor() string {
	if r.Pagination == nil {
		return ""
	}

	return r.Pagination.NextCursor
}

// DecodeData unmarshals the primary payload into v.
func (r *Result) DecodeData(v interface{}) error {
	if len(r.Data) == 0 {
		return nil
	}

	err := json.Unmarshal(r.Data, v)
	if err != nil {
		return fmt.Errorf("decoding result data: %w", err)
	}

	return nil
}

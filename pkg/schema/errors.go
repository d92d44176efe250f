package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a field present with the wrong type.
type ValidationError struct {
	Index  int    // Record position in its dataset
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: field %q: %s", e.Index, e.Key, e.Reason)
}

// AggregateError represents multiple validation failures in one dataset.
type AggregateError struct {
	Dataset string
	Errors  []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %s", e.Dataset, e.Errors[0].Error())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d validation errors:\n", e.Dataset, len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is / errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// Aggregates returns every AggregateError in err's tree, in order.
// errors.Join of several datasets yields one entry per dataset.
func Aggregates(err error) []*AggregateError {
	var out []*AggregateError
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *AggregateError:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(err))
		}
	}
	walk(err)
	return out
}

// ValidationErrors returns all validation errors from every AggregateError err wraps.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var out []error
	for _, aggr := range Aggregates(err) {
		out = append(out, aggr.Errors...)
	}
	return out
}

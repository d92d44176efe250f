package domain

import (
	"errors"
	"fmt"
)

// ErrLoad is matched by every LoadError.
var ErrLoad = errors.New("dataset load failed")

// ErrMissingField is matched by every MissingFieldError.
var ErrMissingField = errors.New("missing field")

// ErrDatasetNotFound is returned by loaders when no source exists for a dataset name.
var ErrDatasetNotFound = errors.New("dataset not found")

// LoadError reports a dataset that could not be read or decoded.
// It is fatal for a run.
type LoadError struct {
	Dataset string // Dataset name (e.g. "states")
	Source  string // Where it was read from (path, redis key, "memory")
	Err     error  // Underlying cause
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load dataset %q: %v", e.Dataset, e.Err)
	}
	return fmt.Sprintf("load dataset %q from %s: %v", e.Dataset, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoad) hold for any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// MissingFieldError reports a record that lacks a field a transform needs,
// or holds it with the wrong type.
type MissingFieldError struct {
	Index  int    // Position of the record in its dataset; -1 when unknown
	Field  string // Field name
	Reason string // Optional detail, e.g. "expected string, got float64"
}

func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("record %d: missing field %q", e.Index, e.Field)
	if e.Index < 0 {
		msg = fmt.Sprintf("missing field %q", e.Field)
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Is makes errors.Is(err, ErrMissingField) hold for any MissingFieldError.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

package domain

import (
	"fmt"
	"maps"
)

// Record is a single dataset entry: a mapping from field name to value.
// Values come straight from JSON decoding (string, json.Number, bool, nil, []any, map[string]any).
type Record map[string]any

// Clone returns a shallow copy of the record.
// Nested values are shared; transforms only ever replace top-level fields.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}

// String returns the named field as a string.
// A missing key, a nil value or a non-string value is reported as a MissingFieldError with Index -1.
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", &MissingFieldError{Index: -1, Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MissingFieldError{Index: -1, Field: field, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

// Datasets holds the two collections every exercise reads from.
type Datasets struct {
	States   []Record `json:"states" yaml:"states"`
	Artworks []Record `json:"art" yaml:"art"`
}

// ByName returns the dataset registered under name.
func (d Datasets) ByName(name string) ([]Record, error) {
	switch name {
	case DatasetStates:
		return d.States, nil
	case DatasetArt:
		return d.Artworks, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
}

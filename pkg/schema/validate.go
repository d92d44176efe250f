package schema

import (
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/atlas/pkg/domain"
)

// Schema is a map of field names to their expected types.
// Every field in the schema is required.
type Schema map[string]Type

// States is the schema the state exercises rely on.
var States = Schema{
	domain.FieldState:   NonEmptyString(),
	domain.FieldCapital: String(),
}

// Artworks is the schema the artwork exercises rely on.
var Artworks = Schema{
	domain.FieldTitle:      String(),
	domain.FieldArtistName: String(),
	domain.FieldStyle:      String(),
}

// Builtin returns the schema for a known dataset name, or nil.
func Builtin(dataset string) Schema {
	switch dataset {
	case domain.DatasetStates:
		return States
	case domain.DatasetArt:
		return Artworks
	default:
		return nil
	}
}

// Merge returns a new schema with the fields of s overlaid by extra.
func (s Schema) Merge(extra Schema) Schema {
	out := make(Schema, len(s)+len(extra))
	maps.Copy(out, s)
	maps.Copy(out, extra)
	return out
}

// Fields returns the schema's field names, sorted.
func (s Schema) Fields() []string {
	return slices.Sorted(maps.Keys(s))
}

// ValidateRecord checks one record. index is reported in the errors.
// Absent fields yield *domain.MissingFieldError, wrong types *ValidationError.
func ValidateRecord(s Schema, index int, r domain.Record) []error {
	var errs []error
	for _, key := range s.Fields() {
		value, exists := r[key]
		if !exists || value == nil {
			errs = append(errs, &domain.MissingFieldError{Index: index, Field: key})
			continue
		}
		if err := s[key].Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Index:  index,
				Key:    key,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}
	return errs
}

// ValidateRecords checks every record of a dataset.
// Returns an *AggregateError with all failures found, in record order.
func ValidateRecords(dataset string, s Schema, records []domain.Record) error {
	if len(s) == 0 {
		// No schema = no validation
		return nil
	}

	var errs []error
	for i, r := range records {
		errs = append(errs, ValidateRecord(s, i, r)...)
	}

	if len(errs) > 0 {
		return &AggregateError{Dataset: dataset, Errors: errs}
	}
	return nil
}

// Describe renders the schema as "field:type" pairs, for logs and the validate command.
func (s Schema) Describe() string {
	parts := make([]string, 0, len(s))
	for _, key := range s.Fields() {
		parts = append(parts, key+":"+s[key].Name())
	}
	return strings.Join(parts, ", ")
}

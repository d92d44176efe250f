package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotArray is returned when a dataset payload is not a JSON array of objects.
var ErrNotArray = errors.New("dataset must be a JSON array of objects")

// DecodeRecords parses a JSON array of objects into records, preserving order.
// Numbers are kept as json.Number so large integers survive untouched.
func DecodeRecords(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if raw == nil {
		return nil, ErrNotArray
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid JSON: trailing data after array")
	}

	records := make([]Record, len(raw))
	for i, m := range raw {
		if m == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrNotArray, i)
		}
		records[i] = Record(m)
	}
	return records, nil
}

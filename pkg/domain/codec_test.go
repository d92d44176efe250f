package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	data := []byte(`[
		{"state": "Alabama", "capital": "Montgomery", "population": 5024279},
		{"state": "Alaska", "capital": "Juneau"}
	]`)

	records, err := DecodeRecords(data)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alabama", records[0]["state"])
	assert.Equal(t, json.Number("5024279"), records[0]["population"])
	assert.Equal(t, "Juneau", records[1]["capital"])
}

func TestDecodeRecords_Empty(t *testing.T) {
	records, err := DecodeRecords([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDecodeRecords_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":       `[{"state": }]`,
		"object":       `{"state": "Ohio"}`,
		"null":         `null`,
		"scalar items": `[1, 2]`,
		"null item":    `[{"state": "Ohio"}, null]`,
		"trailing":     `[] []`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRecords([]byte(input))
			assert.Error(t, err)
		})
	}

	_, err := DecodeRecords([]byte(`{"state": "Ohio"}`))
	assert.True(t, errors.Is(err, ErrNotArray), "object payload should be ErrNotArray, got %v", err)
}

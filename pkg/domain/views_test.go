package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeState(t *testing.T) {
	s, err := DecodeState(Record{"state": "Texas", "capital": "Austin", "abbreviation": "TX", "extra": 1})
	require.NoError(t, err)
	assert.Equal(t, State{Name: "Texas", Capital: "Austin", Abbreviation: "TX"}, s)

	_, err = DecodeState(Record{"state": "Texas"})
	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf), "expected MissingFieldError, got %v", err)
	assert.Equal(t, FieldCapital, mf.Field)
}

func TestDecodeState_WrongType(t *testing.T) {
	_, err := DecodeState(Record{"state": "Texas", "capital": json.Number("42")})
	require.Error(t, err)

	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf), "expected MissingFieldError, got %v", err)
	assert.Equal(t, FieldCapital, mf.Field)
	assert.Equal(t, "expected string, got json.Number", mf.Reason)
}

func TestDecodeState_IgnoresIncidentalTypes(t *testing.T) {
	for _, abbr := range []any{true, json.Number("7"), map[string]any{"iso": "US-AL"}, []any{"AL"}, nil} {
		s, err := DecodeState(Record{"state": "Alabama", "capital": "Montgomery", "abbreviation": abbr})
		require.NoError(t, err, "abbreviation %v", abbr)
		assert.Equal(t, State{Name: "Alabama", Capital: "Montgomery"}, s)
	}
}

func TestArtwork_Record(t *testing.T) {
	a := Artwork{Title: "The Thinker", ArtistName: "Auguste Rodin", Style: "Sculpture", Date: "1904"}
	assert.Equal(t, Record{
		"title":      "The Thinker",
		"artistName": "Auguste Rodin",
		"style":      "Sculpture",
		"date":       "1904",
	}, a.Record())
}

func TestState_Record(t *testing.T) {
	s := State{Name: "Maine", Capital: "Augusta"}
	assert.Equal(t, Record{"state": "Maine", "capital": "Augusta"}, s.Record())
}

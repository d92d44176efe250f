package transform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/atlas/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStates() []domain.Record {
	return []domain.Record{
		{"state": "Alabama", "capital": "Montgomery", "abbreviation": "AL"},
		{"state": "Arizona", "capital": "Phoenix", "abbreviation": "AZ"},
		{"state": "Colorado", "capital": "Denver", "abbreviation": "CO"},
	}
}

func TestCapitalSentences(t *testing.T) {
	states := sampleStates()

	got, err := CapitalSentences(states)
	require.NoError(t, err)

	want := []string{
		"Montgomery is the capital of Alabama.",
		"Phoenix is the capital of Arizona.",
		"Denver is the capital of Colorado.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CapitalSentences() mismatch (-want +got):\n%s", diff)
	}

	for i, r := range states {
		assert.Equal(t, fmt.Sprintf("%s is the capital of %s.", r["capital"], r["state"]), got[i])
	}
}

func TestCapitalSentences_MissingField(t *testing.T) {
	states := sampleStates()
	delete(states[1], "capital")

	got, err := CapitalSentences(states)
	assert.Nil(t, got)

	var mf *domain.MissingFieldError
	require.True(t, errors.As(err, &mf), "expected MissingFieldError, got %v", err)
	assert.Equal(t, 1, mf.Index)
	assert.Equal(t, domain.FieldCapital, mf.Field)
}

func TestCapitalSentences_Empty(t *testing.T) {
	got, err := CapitalSentences(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWithCountry(t *testing.T) {
	states := sampleStates()
	states[2]["country"] = "Mexico"

	once := WithCountry(states)
	twice := WithCountry(once)

	require.Len(t, once, len(states))
	for i, r := range once {
		assert.Equal(t, "USA", r["country"])
		assert.Equal(t, states[i]["state"], r["state"])
		assert.Equal(t, states[i]["capital"], r["capital"])
		assert.Equal(t, states[i]["abbreviation"], r["abbreviation"])
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("WithCountry is not idempotent (-once +twice):\n%s", diff)
	}

	// The input keeps its own values.
	assert.NotContains(t, states[0], "country")
	assert.Equal(t, "Mexico", states[2]["country"])
}

func TestStateNames(t *testing.T) {
	states := append(sampleStates(), domain.Record{"state": "Alabama", "capital": "Montgomery"})

	got, err := StateNames(states)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alabama", "Arizona", "Colorado", "Alabama"}, got)

	_, err = StateNames([]domain.Record{{"capital": "Boise"}})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestInitialHistogram(t *testing.T) {
	got, err := InitialHistogram([]domain.Record{
		{"state": "Alabama"},
		{"state": "Arizona"},
		{"state": "Colorado"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 2, "C": 1}, got)
}

func TestInitialHistogram_SumMatchesInput(t *testing.T) {
	states := []domain.Record{
		{"state": "new York"}, {"state": "Nevada"}, {"state": "Ohio"},
		{"state": "Oregon"}, {"state": "Oklahoma"}, {"state": "Texas"},
	}
	got, err := InitialHistogram(states)
	require.NoError(t, err)

	total := Reduce(mapValues(got), 0, func(acc, n int) int { return acc + n })
	assert.Equal(t, len(states), total)
	assert.Equal(t, map[string]int{"N": 2, "O": 3, "T": 1}, got)
	assert.NotContains(t, got, "B")
}

func TestInitialHistogram_Errors(t *testing.T) {
	_, err := InitialHistogram([]domain.Record{{"state": "Ohio"}, {"state": "  "}})
	var mf *domain.MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, 1, mf.Index)

	_, err = InitialHistogram([]domain.Record{{"name": "Ohio"}})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	got, err := InitialHistogram(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func mapValues(m map[string]int) []int {
	out := make([]int, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func TestCapitalSentences_IncidentalFieldTypes(t *testing.T) {
	got, err := CapitalSentences([]domain.Record{
		{"state": "Alabama", "capital": "Montgomery", "abbreviation": true},
		{"state": "Alaska", "capital": "Juneau", "abbreviation": map[string]any{"iso": "US-AK"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Montgomery is the capital of Alabama.", "Juneau is the capital of Alaska."}, got)
}

func TestInitialHistogram_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		state  string
		reason string
	}{
		{"empty", "", "empty name"},
		{"blank", "   ", "empty name"},
		{"invalid utf8", "\xffhio", "invalid UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitialHistogram([]domain.Record{{"state": tt.state}})
			var mf *domain.MissingFieldError
			require.ErrorAs(t, err, &mf)
			assert.Equal(t, tt.reason, mf.Reason)
		})
	}
}

package transform

import (
	"testing"

	"github.com/aretw0/atlas/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArt() []domain.Record {
	return []domain.Record{
		{"title": `Study for "An Aragonese Smuggler"`, "artistName": "William Turner Dannat", "style": "Drawing", "date": "1883"},
		{"title": "The Kiss", "artistName": "Auguste Rodin", "style": "Sculpture", "date": "1882"},
		{"title": "Water Lilies", "artistName": "Claude Monet", "style": "Painting"},
		{"title": "The Thinker", "artistName": "Auguste Rodin", "style": "Sculpture"},
		{"title": "Haystacks", "artistName": "Claude Monet", "style": "Painting"},
	}
}

func TestArtworkKeys(t *testing.T) {
	got, err := ArtworkKeys(sampleArt())
	require.NoError(t, err)
	require.Len(t, got, 5)

	for _, r := range got {
		assert.Len(t, r, 2)
		assert.Contains(t, r, "title")
		assert.Contains(t, r, "artistName")
	}
	assert.Equal(t, domain.Record{
		"title":      `Study for "An Aragonese Smuggler"`,
		"artistName": "William Turner Dannat",
	}, got[0])
	assert.Equal(t, "The Thinker", got[3]["title"])
}

func TestArtworkKeys_MissingField(t *testing.T) {
	art := sampleArt()
	delete(art[4], "artistName")

	_, err := ArtworkKeys(art)
	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.Contains(t, err.Error(), "record 4")
}

func TestDistinctStyles(t *testing.T) {
	got, err := DistinctStyles([]domain.Record{
		{"style": "Painting"}, {"style": "Sculpture"}, {"style": "Painting"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Painting", "Sculpture"}, got)

	got, err = DistinctStyles(sampleArt())
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Drawing", "Sculpture", "Painting"}, got); diff != "" {
		t.Errorf("DistinctStyles() mismatch (-want +got):\n%s", diff)
	}

	got, err = DistinctStyles(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = DistinctStyles([]domain.Record{{"title": "Untitled"}})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestRodinWorks(t *testing.T) {
	got := RodinWorks([]domain.Record{
		{"artistName": "Auguste Rodin", "title": "X"},
		{"artistName": "Monet", "title": "Y"},
	})
	assert.Equal(t, []domain.Record{{"artistName": "Auguste Rodin", "title": "X"}}, got)

	art := sampleArt()
	got = RodinWorks(art)
	require.Len(t, got, 2)
	assert.Equal(t, art[1], got[0])
	assert.Equal(t, art[3], got[1])

	got[0]["title"] = "changed"
	assert.Equal(t, "The Kiss", art[1]["title"], "filtered records must not alias the input")
}

func TestByArtist_NoMatch(t *testing.T) {
	got := RodinWorks(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ByArtist([]domain.Record{
		{"artistName": "auguste rodin"},
		{"title": "no artist"},
		{"artistName": "Auguste Rodin "},
	}, domain.ArtistRodin)
	assert.Empty(t, got)
}

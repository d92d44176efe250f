package transform

import (
	"github.com/aretw0/atlas/pkg/domain"
)

// ArtworkKeys projects every artwork to a record holding exactly title and artistName.
func ArtworkKeys(art []domain.Record) ([]domain.Record, error) {
	return MapErr(art, func(i int, r domain.Record) (domain.Record, error) {
		title, err := field(i, r, domain.FieldTitle)
		if err != nil {
			return nil, err
		}
		artist, err := field(i, r, domain.FieldArtistName)
		if err != nil {
			return nil, err
		}
		return domain.Record{
			domain.FieldTitle:      title,
			domain.FieldArtistName: artist,
		}, nil
	})
}

// DistinctStyles lists each style once, in order of first appearance.
func DistinctStyles(art []domain.Record) ([]string, error) {
	seen := make(map[string]struct{})
	styles := make([]string, 0)
	for i, r := range art {
		style, err := field(i, r, domain.FieldStyle)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[style]; dup {
			continue
		}
		seen[style] = struct{}{}
		styles = append(styles, style)
	}
	return styles, nil
}

// ByArtist keeps copies of the artworks whose artistName equals name exactly.
// Records without an artistName never match.
func ByArtist(art []domain.Record, name string) []domain.Record {
	matches := Filter(art, func(r domain.Record) bool {
		artist, err := r.String(domain.FieldArtistName)
		return err == nil && artist == name
	})
	return Map(matches, domain.Record.Clone)
}

// RodinWorks is ByArtist bound to Auguste Rodin.
func RodinWorks(art []domain.Record) []domain.Record {
	return ByArtist(art, domain.ArtistRodin)
}

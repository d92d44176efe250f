package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/atlas/pkg/domain"
)

// Loader implements ports.DatasetLoader using an in-memory map.
// Stored records are cloned on the way in and on the way out so callers never share state.
type Loader struct {
	datasets map[string][]domain.Record
}

// NewLoader creates a new in-memory loader holding the provided datasets.
func NewLoader(datasets map[string][]domain.Record) *Loader {
	l := &Loader{datasets: make(map[string][]domain.Record, len(datasets))}
	for name, records := range datasets {
		l.datasets[name] = cloneAll(records)
	}
	return l
}

// NewFromViews builds a loader from typed views.
// This keeps test fixtures short and type-safe.
func NewFromViews(states []domain.State, artworks []domain.Artwork) *Loader {
	s := make([]domain.Record, len(states))
	for i, st := range states {
		s[i] = st.Record()
	}
	a := make([]domain.Record, len(artworks))
	for i, art := range artworks {
		a[i] = art.Record()
	}
	return NewLoader(map[string][]domain.Record{
		domain.DatasetStates: s,
		domain.DatasetArt:    a,
	})
}

// Load returns a copy of the named dataset.
func (l *Loader) Load(ctx context.Context, name string) ([]domain.Record, error) {
	records, ok := l.datasets[name]
	if !ok {
		return nil, &domain.LoadError{
			Dataset: name,
			Source:  "memory",
			Err:     fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name),
		}
	}
	return cloneAll(records), nil
}

// List returns all available dataset names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.datasets))
	for k := range l.datasets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}

func cloneAll(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

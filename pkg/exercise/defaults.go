package exercise

import (
	"context"

	"github.com/aretw0/atlas/pkg/domain"
	"github.com/aretw0/atlas/pkg/transform"
)

// Groups mirror the two worksheets the exercises come from.
const (
	GroupMap    = "foreach-map"
	GroupReduce = "reduce"
)

// Default returns a registry holding the bundled exercises in worksheet order.
func Default() *Registry {
	r := NewRegistry()
	for _, ex := range builtins() {
		r.MustRegister(ex)
	}
	return r
}

func builtins() []Exercise {
	return []Exercise{
		{
			Name:    "capitals",
			Title:   "Print \"{capital} is the capital of {state}.\" for every state",
			Group:   GroupMap,
			Dataset: domain.DatasetStates,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.CapitalSentences(ds.States)
			},
		},
		{
			Name:    "country",
			Title:   "Add country \"USA\" to every state",
			Group:   GroupMap,
			Dataset: domain.DatasetStates,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.WithCountry(ds.States), nil
			},
		},
		{
			Name:    "state-names",
			Title:   "List just the state names",
			Group:   GroupMap,
			Dataset: domain.DatasetStates,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.StateNames(ds.States)
			},
		},
		{
			Name:    "artwork-keys",
			Title:   "Project artworks to title and artistName",
			Group:   GroupMap,
			Dataset: domain.DatasetArt,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.ArtworkKeys(ds.Artworks)
			},
		},
		{
			Name:    "initials",
			Title:   "Count states by first letter",
			Group:   GroupReduce,
			Dataset: domain.DatasetStates,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.InitialHistogram(ds.States)
			},
		},
		{
			Name:    "styles",
			Title:   "List distinct art styles",
			Group:   GroupReduce,
			Dataset: domain.DatasetArt,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.DistinctStyles(ds.Artworks)
			},
		},
		{
			Name:    "rodin",
			Title:   "Works by Auguste Rodin",
			Group:   GroupReduce,
			Dataset: domain.DatasetArt,
			Run: func(_ context.Context, ds domain.Datasets) (any, error) {
				return transform.RodinWorks(ds.Artworks), nil
			},
		},
	}
}

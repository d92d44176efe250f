package ports

import (
	"context"

	"github.com/aretw0/atlas/pkg/domain"
)

// DatasetLoader defines how the workbook retrieves datasets.
// This allows the storage layer (files, embedded FS, Redis, memory) to be decoupled.
type DatasetLoader interface {
	// Load reads the dataset registered under name.
	// Records keep their source order. Any failure is returned as a *domain.LoadError.
	Load(ctx context.Context, name string) ([]domain.Record, error)

	// List returns the names of all datasets available, sorted.
	List(ctx context.Context) ([]string, error)
}

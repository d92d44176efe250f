package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/atlas/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDatasetLoaderContract runs a suite of tests to verify that a DatasetLoader implementation
// adheres to the defined interface contract.
// The loader must already hold exactly the datasets in seeded.
func RunDatasetLoaderContract(t *testing.T, loader DatasetLoader, seeded map[string][]domain.Record) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load preserves order and fields", func(t *testing.T) {
		for name, want := range seeded {
			got, err := loader.Load(ctx, name)
			require.NoError(t, err, "Load(%s) should not return error", name)
			require.Len(t, got, len(want))
			for i := range want {
				for key, value := range want[i] {
					assert.Equal(t, value, got[i][key], "dataset %s record %d field %s", name, i, key)
				}
			}
		}
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-dataset")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLoad)

		var loadErr *domain.LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, "non-existent-dataset", loadErr.Dataset)
	})

	t.Run("List", func(t *testing.T) {
		names, err := loader.List(ctx)
		require.NoError(t, err)
		assert.Len(t, names, len(seeded))
		assert.IsNonDecreasing(t, names)
		for name := range seeded {
			assert.Contains(t, names, name)
		}
	})
}

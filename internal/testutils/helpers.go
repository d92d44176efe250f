package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDatasets creates a temporary data directory holding states.json and art.json.
// An empty payload skips that file, to exercise missing-dataset paths.
// It returns the absolute path to the directory and fails the test immediately on error.
func WriteDatasets(t *testing.T, states, art string) string {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, payload := range map[string]string{"states.json": states, "art.json": art} {
		if payload == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o644), "Failed to write %s", name)
	}
	return dir
}

package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/atlas/data"
	"github.com/aretw0/atlas/pkg/domain"
)

const ext = ".json"

// Loader implements ports.DatasetLoader over a filesystem.
// Dataset "name" is read from "<name>.json" at the root of the filesystem.
type Loader struct {
	fsys   fs.FS
	source string // human-readable origin used in errors
}

// NewDir creates a loader reading JSON files from a directory on disk.
// If dir is empty, it defaults to "data".
func NewDir(dir string) *Loader {
	if dir == "" {
		dir = "data"
	}
	return &Loader{fsys: os.DirFS(dir), source: dir}
}

// NewFS creates a loader over an arbitrary filesystem.
func NewFS(fsys fs.FS, source string) *Loader {
	return &Loader{fsys: fsys, source: source}
}

// NewBundled creates a loader over the datasets compiled into the binary.
func NewBundled() *Loader {
	return NewFS(data.FS, "bundled")
}

// Load reads and decodes <name>.json.
func (l *Loader) Load(ctx context.Context, name string) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := name + ext
	src := filepath.Join(l.source, file)
	loadErr := func(err error) error {
		return &domain.LoadError{Dataset: name, Source: src, Err: err}
	}

	if !fs.ValidPath(file) || strings.Contains(name, "/") {
		return nil, loadErr(fmt.Errorf("invalid dataset name %q", name))
	}

	raw, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadErr(fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name))
		}
		return nil, loadErr(fmt.Errorf("failed to read dataset file: %w", err))
	}

	records, err := domain.DecodeRecords(raw)
	if err != nil {
		return nil, loadErr(err)
	}
	return records, nil
}

// List returns the stems of every *.json file at the root, sorted.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	matches, err := fs.Glob(l.fsys, "*"+ext)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ext))
	}
	sort.Strings(names)
	return names, nil
}

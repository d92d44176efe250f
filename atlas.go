package atlas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/atlas/internal/logging"
	"github.com/aretw0/atlas/pkg/adapters/file"
	"github.com/aretw0/atlas/pkg/domain"
	"github.com/aretw0/atlas/pkg/exercise"
	"github.com/aretw0/atlas/pkg/observability"
	"github.com/aretw0/atlas/pkg/ports"
	"github.com/aretw0/atlas/pkg/schema"
)

// ErrNotLoaded is returned when an exercise runs before Load succeeded.
var ErrNotLoaded = errors.New("datasets not loaded")

// Workbook is the high-level entry point for the atlas library.
// It loads the two datasets once and runs exercises against them.
type Workbook struct {
	loader   ports.DatasetLoader
	registry *exercise.Registry
	schemas  map[string]schema.Schema
	strict   bool
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	mu       sync.RWMutex
	datasets *domain.Datasets
}

// Option defines a functional option for configuring the Workbook.
type Option func(*Workbook)

// WithLoader injects a custom DatasetLoader, bypassing the bundled data.
func WithLoader(l ports.DatasetLoader) Option {
	return func(w *Workbook) {
		w.loader = l
	}
}

// WithRegistry replaces the default exercise catalogue.
func WithRegistry(r *exercise.Registry) Option {
	return func(w *Workbook) {
		w.registry = r
	}
}

// WithLogger sets a custom structured logger for the workbook.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workbook) {
		w.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls chain the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Workbook) {
		w.hooks = w.hooks.Merge(hooks)
	}
}

// WithMetrics records exercise runs and dataset sizes on m.
func WithMetrics(m *observability.Metrics) Option {
	return WithLifecycleHooks(m.Hooks())
}

// WithSchemas extends the built-in dataset schemas with extra fields.
// When strict is true, Load fails if a dataset does not satisfy its schema.
func WithSchemas(extra map[string]schema.Schema, strict bool) Option {
	return func(w *Workbook) {
		for name, s := range extra {
			w.schemas[name] = w.schemas[name].Merge(s)
		}
		w.strict = strict
	}
}

// New initializes a Workbook.
// By default, it reads the datasets bundled into the binary.
func New(opts ...Option) (*Workbook, error) {
	w := &Workbook{
		schemas: map[string]schema.Schema{
			domain.DatasetStates: schema.States,
			domain.DatasetArt:    schema.Artworks,
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.loader == nil {
		w.loader = file.NewBundled()
	}
	if w.registry == nil {
		w.registry = exercise.Default()
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}

	return w, nil
}

// Load reads both datasets through the loader.
// It is a one-shot read: calling it again re-reads the sources.
func (w *Workbook) Load(ctx context.Context) error {
	var ds domain.Datasets
	for _, name := range []string{domain.DatasetStates, domain.DatasetArt} {
		records, err := w.loader.Load(ctx, name)
		if err != nil {
			return err
		}
		if w.strict {
			if err := schema.ValidateRecords(name, w.schemas[name], records); err != nil {
				return &domain.LoadError{Dataset: name, Err: err}
			}
		}
		switch name {
		case domain.DatasetStates:
			ds.States = records
		case domain.DatasetArt:
			ds.Artworks = records
		}

		w.logger.Debug("Dataset loaded", "dataset", name, "records", len(records))
		if w.hooks.OnDatasetLoaded != nil {
			w.hooks.OnDatasetLoaded(ctx, &domain.DatasetEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventDatasetLoaded},
				Dataset:   name,
				Records:   len(records),
			})
		}
	}

	w.mu.Lock()
	w.datasets = &ds
	w.mu.Unlock()
	return nil
}

// Datasets returns the loaded datasets.
func (w *Workbook) Datasets() (domain.Datasets, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.datasets == nil {
		return domain.Datasets{}, ErrNotLoaded
	}
	return *w.datasets, nil
}

// Exercises lists the catalogue in run order.
func (w *Workbook) Exercises() []exercise.Exercise {
	return w.registry.List()
}

// Run executes one exercise by name.
func (w *Workbook) Run(ctx context.Context, name string) (exercise.Result, error) {
	ds, err := w.Datasets()
	if err != nil {
		return exercise.Result{Name: name, Err: err}, err
	}

	ex, err := w.registry.Get(name)
	if err != nil {
		return exercise.Result{Name: name, Err: err}, err
	}

	event := &domain.ExerciseEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventExerciseStart},
		Exercise:  ex.Name,
		Dataset:   ex.Dataset,
	}
	if w.hooks.OnExerciseStart != nil {
		w.hooks.OnExerciseStart(ctx, event)
	}

	start := time.Now()
	res, err := w.registry.Run(ctx, name, ds)

	if w.hooks.OnExerciseFinish != nil {
		finish := *event
		finish.Type = domain.EventExerciseFinish
		finish.Timestamp = time.Now()
		finish.Duration = time.Since(start)
		finish.Err = err
		w.hooks.OnExerciseFinish(ctx, &finish)
	}

	return res, err
}

// RunAll executes the named exercises in order, or the whole catalogue when none are given.
// Every exercise runs even if an earlier one fails; the returned error joins all failures.
func (w *Workbook) RunAll(ctx context.Context, names ...string) ([]exercise.Result, error) {
	if len(names) == 0 {
		for _, ex := range w.registry.List() {
			names = append(names, ex.Name)
		}
	}

	results := make([]exercise.Result, 0, len(names))
	var errs []error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := w.Run(ctx, name)
		results = append(results, res)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

// Validate checks the loaded datasets against their schemas without failing Load.
// The returned error joins one *schema.AggregateError per invalid dataset.
func (w *Workbook) Validate(ctx context.Context) error {
	ds, err := w.Datasets()
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range []string{domain.DatasetStates, domain.DatasetArt} {
		records, _ := ds.ByName(name)
		if err := schema.ValidateRecords(name, w.schemas[name], records); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// Schema returns the effective schema for a dataset.
func (w *Workbook) Schema(dataset string) schema.Schema {
	return w.schemas[dataset]
}

// Loader returns the underlying DatasetLoader used by the workbook.
func (w *Workbook) Loader() ports.DatasetLoader {
	return w.loader
}

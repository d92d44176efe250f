package exercise

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/atlas/pkg/domain"
)

// ErrNotFound is returned when no exercise is registered under a name.
var ErrNotFound = errors.New("exercise not found")

// Func is the body of an exercise: it reads the loaded datasets and returns a result.
type Func func(ctx context.Context, ds domain.Datasets) (any, error)

// Exercise is a named, runnable transform over one dataset.
type Exercise struct {
	Name    string `json:"name" yaml:"name"`
	Title   string `json:"title" yaml:"title"`
	Group   string `json:"group" yaml:"group"`
	Dataset string `json:"dataset" yaml:"dataset"`
	Run     Func   `json:"-" yaml:"-"`
}

// Result is the outcome of running one exercise.
type Result struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Err   error  `json:"-" yaml:"-"`
}

// Registry manages the available exercises, keeping registration order.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	exercises map[string]Exercise
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exercises: make(map[string]Exercise),
	}
}

// Register adds an exercise to the registry.
// If an exercise with the same name exists, it is replaced in place.
func (r *Registry) Register(ex Exercise) error {
	if ex.Name == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if ex.Run == nil {
		return fmt.Errorf("exercise %s has no Run function", ex.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.exercises[ex.Name]; !exists {
		r.order = append(r.order, ex.Name)
	}
	r.exercises[ex.Name] = ex
	return nil
}

// MustRegister is like Register but panics if the exercise is malformed.
func (r *Registry) MustRegister(ex Exercise) {
	if err := r.Register(ex); err != nil {
		panic(err)
	}
}

// Get looks up an exercise by name.
func (r *Registry) Get(name string) (Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.exercises[name]
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return ex, nil
}

// List returns every exercise in registration order.
func (r *Registry) List() []Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Exercise, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.exercises[name])
	}
	return out
}

// Run looks up an exercise by name and executes it against ds.
// Errors from the exercise itself are returned in Result.Err as well as the error return.
func (r *Registry) Run(ctx context.Context, name string, ds domain.Datasets) (Result, error) {
	ex, err := r.Get(name)
	if err != nil {
		return Result{Name: name, Err: err}, err
	}

	value, err := ex.Run(ctx, ds)
	if err != nil {
		value = nil
		err = fmt.Errorf("exercise %s: %w", name, err)
	}
	return Result{Name: ex.Name, Title: ex.Title, Value: value, Err: err}, err
}

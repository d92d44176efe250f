package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/atlas/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix is the key prefix datasets are stored under.
const DefaultPrefix = "atlas:dataset:"

// Loader implements ports.DatasetLoader using Redis.
// Each dataset is a string key holding a JSON array: <prefix><name>.
// The loader never writes; Seed exists for fixtures and tooling.
type Loader struct {
	client *backend.Client
	prefix string
}

type Option func(*Loader)

// WithPrefix sets the key prefix for datasets.
func WithPrefix(prefix string) Option {
	return func(l *Loader) {
		l.prefix = prefix
	}
}

// New creates a new Redis loader with options.
func New(address, password string, db int, opts ...Option) *Loader {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis loader from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Loader) key(name string) string {
	return l.prefix + name
}

// Load reads and decodes the dataset stored under <prefix><name>.
func (l *Loader) Load(ctx context.Context, name string) ([]domain.Record, error) {
	key := l.key(name)
	loadErr := func(err error) error {
		return &domain.LoadError{Dataset: name, Source: "redis://" + key, Err: err}
	}

	data, err := l.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, loadErr(fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name))
		}
		return nil, loadErr(fmt.Errorf("redis get failed: %w", err))
	}

	records, err := domain.DecodeRecords(data)
	if err != nil {
		return nil, loadErr(err)
	}
	return records, nil
}

// List returns the names of all datasets found under the prefix.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := l.client.Scan(ctx, 0, l.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), l.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan datasets: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Seed stores a raw JSON payload under the dataset key.
// The payload is validated before it is written.
func (l *Loader) Seed(ctx context.Context, name string, payload []byte) error {
	if _, err := domain.DecodeRecords(payload); err != nil {
		return fmt.Errorf("refusing to seed %s: %w", name, err)
	}
	if err := l.client.Set(ctx, l.key(name), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", name, err)
	}
	return nil
}

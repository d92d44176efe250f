package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/atlas"
	"github.com/aretw0/atlas/internal/config"
	"github.com/aretw0/atlas/pkg/adapters/file"
	"github.com/aretw0/atlas/pkg/adapters/redis"
	"github.com/aretw0/atlas/pkg/observability"
	"github.com/aretw0/atlas/pkg/ports"
)

// App is the wired application shared by the commands.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Workbook *atlas.Workbook
}

// Setup reads the config, applies flag overrides and builds the workbook.
func Setup(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, opts.ConfigRequired)
	if err != nil {
		return nil, err
	}

	if opts.DataDir != "" {
		cfg.Data.Dir = opts.DataDir
	}
	if opts.RedisAddr != "" {
		cfg.Data.Redis.Addr = opts.RedisAddr
	}

	logger, err := createLogger(opts.stderr(), cfg.Log, opts.Debug)
	if err != nil {
		return nil, err
	}

	loader := newLoader(cfg.Data)
	metrics := observability.NewMetrics()

	wb, err := atlas.New(
		atlas.WithLoader(loader),
		atlas.WithLogger(logger),
		atlas.WithMetrics(metrics),
		atlas.WithLifecycleHooks(observability.LogHooks(logger)),
		atlas.WithSchemas(cfg.Schemas, cfg.Strict),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing atlas: %w", err)
	}

	logger.Debug("Atlas configured", "source", describeSource(cfg.Data), "strict", cfg.Strict)
	return &App{Config: cfg, Logger: logger, Metrics: metrics, Workbook: wb}, nil
}

// newLoader picks the dataset source: Redis, then a directory, then the bundled files.
func newLoader(cfg config.DataConfig) ports.DatasetLoader {
	switch {
	case cfg.Redis.Addr != "":
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
	case cfg.Dir != "":
		return file.NewDir(cfg.Dir)
	default:
		return file.NewBundled()
	}
}

func describeSource(cfg config.DataConfig) string {
	switch {
	case cfg.Redis.Addr != "":
		return "redis://" + cfg.Redis.Addr
	case cfg.Dir != "":
		return cfg.Dir
	default:
		return "bundled"
	}
}

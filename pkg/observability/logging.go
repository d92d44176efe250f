package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/atlas/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every event at debug level,
// and failed exercises at warn.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExerciseStart: func(ctx context.Context, e *domain.ExerciseEvent) {
			logger.DebugContext(ctx, "exercise_start", "exercise", e.Exercise, "dataset", e.Dataset)
		},
		OnExerciseFinish: func(ctx context.Context, e *domain.ExerciseEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "exercise_failed", "exercise", e.Exercise, "duration", e.Duration, "error", e.Err)
				return
			}
			logger.DebugContext(ctx, "exercise_finish", "exercise", e.Exercise, "duration", e.Duration)
		},
		OnDatasetLoaded: func(ctx context.Context, e *domain.DatasetEvent) {
			logger.DebugContext(ctx, "dataset_loaded", "dataset", e.Dataset, "records", e.Records)
		},
	}
}

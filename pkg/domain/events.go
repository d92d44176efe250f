package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventExerciseStart  EventType = "exercise_start"
	EventExerciseFinish EventType = "exercise_finish"
	EventDatasetLoaded  EventType = "dataset_loaded"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ExerciseEvent represents the start or end of one exercise run.
type ExerciseEvent struct {
	EventBase
	Exercise string        `json:"exercise"`
	Dataset  string        `json:"dataset"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// DatasetEvent is emitted once per dataset after a successful load.
type DatasetEvent struct {
	EventBase
	Dataset string `json:"dataset"`
	Records int    `json:"records"`
}

// LifecycleHooks defines callbacks for workbook observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnExerciseStart  func(context.Context, *ExerciseEvent)
	OnExerciseFinish func(context.Context, *ExerciseEvent)
	OnDatasetLoaded  func(context.Context, *DatasetEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnExerciseStart:  chainExercise(h.OnExerciseStart, other.OnExerciseStart),
		OnExerciseFinish: chainExercise(h.OnExerciseFinish, other.OnExerciseFinish),
		OnDatasetLoaded: func(ctx context.Context, e *DatasetEvent) {
			if h.OnDatasetLoaded != nil {
				h.OnDatasetLoaded(ctx, e)
			}
			if other.OnDatasetLoaded != nil {
				other.OnDatasetLoaded(ctx, e)
			}
		},
	}
}

func chainExercise(a, b func(context.Context, *ExerciseEvent)) func(context.Context, *ExerciseEvent) {
	return func(ctx context.Context, e *ExerciseEvent) {
		if a != nil {
			a(ctx, e)
		}
		if b != nil {
			b(ctx, e)
		}
	}
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/atlas/pkg/domain"
	"github.com/aretw0/atlas/pkg/exercise"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Workbook is the part of atlas.Workbook the server needs.
type Workbook interface {
	Exercises() []exercise.Exercise
	Run(ctx context.Context, name string) (exercise.Result, error)
	Datasets() (domain.Datasets, error)
}

// Server serves exercise results over HTTP.
type Server struct {
	Workbook Workbook
	Logger   *slog.Logger
}

// ExerciseInfo is one catalogue entry in GET /exercises.
type ExerciseInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Group   string `json:"group,omitempty"`
	Dataset string `json:"dataset"`
}

// ResultResponse is the body of GET /exercises/{name}.
type ResultResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler for a workbook.
// metrics is mounted on /metrics when not nil.
func NewHandler(wb Workbook, metrics http.Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{Workbook: wb, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/exercises", s.ListExercises)
	r.Get("/exercises/{name}", s.RunExercise)
	r.Get("/datasets/{name}", s.GetDataset)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListExercises handles GET /exercises.
func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	list := s.Workbook.Exercises()
	resp := make([]ExerciseInfo, 0, len(list))
	for _, ex := range list {
		resp = append(resp, ExerciseInfo{Name: ex.Name, Title: ex.Title, Group: ex.Group, Dataset: ex.Dataset})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// RunExercise handles GET /exercises/{name}.
func (s *Server) RunExercise(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if _, err := s.Workbook.Datasets(); err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	res, err := s.Workbook.Run(r.Context(), name)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.Logger.Error("Exercise failed", "exercise", name, "error", err)
		} else {
			s.Logger.Warn("Exercise failed", "exercise", name, "error", err)
		}
		s.writeJSON(w, status, ResultResponse{Name: name, Title: res.Title, Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, ResultResponse{Name: res.Name, Title: res.Title, Value: res.Value})
}

// GetDataset handles GET /datasets/{name}.
func (s *Server) GetDataset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ds, err := s.Workbook.Datasets()
	if err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	records, err := ds.ByName(name)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if records == nil {
		records = []domain.Record{}
	}
	s.writeJSON(w, http.StatusOK, records)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, exercise.ErrNotFound), errors.Is(err, domain.ErrDatasetNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

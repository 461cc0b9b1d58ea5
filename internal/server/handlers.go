package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/fitprogram/internal/planner"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "stats not available"})
		return
	}
	stats, err := s.stats.GetCompletionStats(r.Context(), userIDFromContext(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	view, err := s.planner.Program(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	day, err := intParam(r, "day")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	workout, err := s.planner.WorkoutByDay(r.Context(), day)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleDayProgress(w http.ResponseWriter, r *http.Request) {
	day, err := intParam(r, "day")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	snap, err := s.planner.WorkoutProgress(r.Context(), day, userIDFromContext(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	week, err := intParam(r, "week")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	workouts, err := s.planner.WorkoutsByWeek(r.Context(), week)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleWeekProgress(w http.ResponseWriter, r *http.Request) {
	week, err := intParam(r, "week")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	weightKg, err := weightParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := s.planner.WeekSummary(r.Context(), week, weightKg, userIDFromContext(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	weightKg, err := weightParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := s.planner.Summary(r.Context(), weightKg, userIDFromContext(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	next, err := s.planner.NextWorkout(r.Context(), userIDFromContext(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func (s *Server) handleCompletions(w http.ResponseWriter, r *http.Request) {
	st, err := s.planner.Completions(r.Context(), userIDFromContext(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.planner.Reset(r.Context(), userIDFromContext(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetDay(done bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := intParam(r, "day")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := s.planner.MarkDay(r.Context(), userIDFromContext(r), day, done); err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"day": day, "completed": done})
	}
}

func (s *Server) handleSetExercise(done bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := intParam(r, "day")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		id, err := intParam(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		uid := userIDFromContext(r)
		if err := s.planner.MarkExercise(r.Context(), uid, day, id, done); err != nil {
			s.writeError(w, r, err)
			return
		}
		snap, err := s.planner.WorkoutProgress(r.Context(), day, uid)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// writeError maps planner errors to 404 and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, planner.ErrDayNotFound) || errors.Is(err, planner.ErrExerciseNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	s.log.Error("request failed", "path", r.URL.Path, "request_id", requestIDFromContext(r), "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// weightParam reads the optional weight_kg query parameter; absent means 0,
// which keeps the generated calorie estimates.
func weightParam(r *http.Request) (float64, error) {
	v := r.URL.Query().Get("weight_kg")
	if v == "" {
		return 0, nil
	}
	kg, err := strconv.ParseFloat(v, 64)
	if err != nil || !(kg > 0) || math.IsInf(kg, 1) {
		return 0, fmt.Errorf("weight_kg must be a positive number")
	}
	return kg, nil
}

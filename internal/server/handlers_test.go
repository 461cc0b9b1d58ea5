package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meltforce/fitprogram/internal/catalog"
	"github.com/meltforce/fitprogram/internal/planner"
	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/progress"
	"github.com/meltforce/fitprogram/internal/registry"
	"github.com/meltforce/fitprogram/internal/storage"
)

const testKey = "test-key"

func newTestServer(t *testing.T) (*Server, *program.Program) {
	t.Helper()
	prog, err := program.Generate(catalog.Default(), registry.Default(), 56)
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.DiscardHandler)
	return New(planner.New(prog, progress.NewMemoryStore(), log), testKey, log), prog
}

func do(t *testing.T, s *Server, method, path string, withKey bool, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if withKey {
		req.Header.Set("X-API-Key", testKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if out != nil && rec.Code < 300 {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode error: %v", method, path, err)
		}
	}
	return rec.Code
}

// TestHandleMeDefault verifies the /api/v1/me endpoint returns the dev user
// identity when no Tailscale middleware is active.
func TestHandleMeDefault(t *testing.T) {
	s, _ := newTestServer(t)
	var info UserInfo
	if code := do(t, s, http.MethodGet, "/api/v1/me", false, &info); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if info.Login != "local" || info.DisplayName != "Local Dev User" {
		t.Errorf("info = %+v", info)
	}
}

// TestHandleProgram verifies the full program is served with its parameters.
func TestHandleProgram(t *testing.T) {
	s, prog := newTestServer(t)
	var view planner.ProgramView
	if code := do(t, s, http.MethodGet, "/api/v1/program", false, &view); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(view.Workouts) != prog.Len() {
		t.Errorf("workouts = %d, want %d", len(view.Workouts), prog.Len())
	}
	if view.WeightKg != 56 {
		t.Errorf("weight = %v, want 56", view.WeightKg)
	}
}

// TestHandleDay verifies day lookup, 404 outside the program, and 400 for
// a non-numeric day.
func TestHandleDay(t *testing.T) {
	s, _ := newTestServer(t)

	var w program.Workout
	if code := do(t, s, http.MethodGet, "/api/v1/program/days/10", false, &w); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if w.Day != 10 || w.Week != 2 || w.TemplateDay != 3 {
		t.Errorf("day 10 = %+v", w)
	}

	if code := do(t, s, http.MethodGet, "/api/v1/program/days/31", false, nil); code != http.StatusNotFound {
		t.Errorf("day 31 status = %d, want 404", code)
	}
	if code := do(t, s, http.MethodGet, "/api/v1/program/days/abc", false, nil); code != http.StatusBadRequest {
		t.Errorf("day abc status = %d, want 400", code)
	}
}

// TestHandleWeek verifies weeks return their workouts and unknown weeks are empty.
func TestHandleWeek(t *testing.T) {
	s, _ := newTestServer(t)

	var week []program.Workout
	do(t, s, http.MethodGet, "/api/v1/program/weeks/5", false, &week)
	if len(week) != 2 {
		t.Errorf("week 5 = %d workouts, want 2 bonus days", len(week))
	}

	var none []program.Workout
	if code := do(t, s, http.MethodGet, "/api/v1/program/weeks/9", false, &none); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(none) != 0 {
		t.Errorf("week 9 = %d workouts, want 0", len(none))
	}
}

// TestCompletionFlow verifies marking through the API updates progress,
// the summary and the next workout.
func TestCompletionFlow(t *testing.T) {
	s, prog := newTestServer(t)
	day1, _ := prog.WorkoutByDay(1)
	first := day1.Exercises[0]

	var snap progress.Snapshot
	path := fmt.Sprintf("/api/v1/completions/days/1/exercises/%d", first.ID)
	if code := do(t, s, http.MethodPut, path, true, &snap); code != http.StatusOK {
		t.Fatalf("mark status = %d", code)
	}
	if snap.CompletedCount != 1 || snap.TotalCount != len(day1.Exercises) {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.CompletedMinutes != first.Duration {
		t.Errorf("minutes = %v, want %v", snap.CompletedMinutes, first.Duration)
	}

	if code := do(t, s, http.MethodPut, "/api/v1/completions/days/1", true, nil); code != http.StatusOK {
		t.Fatalf("day status = %d", code)
	}

	var next planner.Next
	do(t, s, http.MethodGet, "/api/v1/next", false, &next)
	if next.Workout == nil || next.Workout.Day != 2 {
		t.Errorf("next = %+v, want day 2", next)
	}

	var sum progress.Summary
	do(t, s, http.MethodGet, "/api/v1/summary", false, &sum)
	if sum.CompletedDays != 1 || sum.CompletedMinutes != first.Duration {
		t.Errorf("summary = %+v", sum)
	}

	var st progress.CompletionState
	do(t, s, http.MethodGet, "/api/v1/completions", false, &st)
	if !st.Exercises[progress.Key(1, first.ID)] || !st.Days[1] {
		t.Errorf("completions = %+v", st)
	}

	if code := do(t, s, http.MethodDelete, path, true, &snap); code != http.StatusOK {
		t.Fatalf("unmark status = %d", code)
	}
	if snap.CompletedCount != 0 {
		t.Errorf("after unmark = %+v", snap)
	}

	if code := do(t, s, http.MethodDelete, "/api/v1/completions", true, nil); code != http.StatusNoContent {
		t.Fatalf("reset status = %d, want 204", code)
	}
	do(t, s, http.MethodGet, "/api/v1/next", false, &next)
	if next.Workout == nil || next.Workout.Day != 1 {
		t.Errorf("next after reset = %+v, want day 1", next)
	}
}

// TestCompletionsRequireKey verifies mutations are rejected without the API
// key while reads stay open.
func TestCompletionsRequireKey(t *testing.T) {
	s, _ := newTestServer(t)
	if code := do(t, s, http.MethodPut, "/api/v1/completions/days/1", false, nil); code != http.StatusUnauthorized {
		t.Errorf("PUT without key = %d, want 401", code)
	}
	if code := do(t, s, http.MethodDelete, "/api/v1/completions", false, nil); code != http.StatusUnauthorized {
		t.Errorf("DELETE without key = %d, want 401", code)
	}
	if code := do(t, s, http.MethodGet, "/api/v1/completions", false, nil); code != http.StatusOK {
		t.Errorf("GET without key = %d, want 200", code)
	}
}

// TestMarkForeignExercise verifies an id from another day is a 404.
func TestMarkForeignExercise(t *testing.T) {
	s, prog := newTestServer(t)
	day2, _ := prog.WorkoutByDay(2)
	path := fmt.Sprintf("/api/v1/completions/days/1/exercises/%d", day2.Exercises[0].ID)
	if code := do(t, s, http.MethodPut, path, true, nil); code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

// TestSummaryWeightParam verifies weight_kg re-estimates calories and bad
// values are rejected.
func TestSummaryWeightParam(t *testing.T) {
	s, _ := newTestServer(t)

	var base, heavy progress.Summary
	do(t, s, http.MethodGet, "/api/v1/summary", false, &base)
	do(t, s, http.MethodGet, "/api/v1/summary?weight_kg=90", false, &heavy)
	if heavy.TotalEstimatedCalories <= base.TotalEstimatedCalories {
		t.Errorf("90 kg total %v should exceed %v", heavy.TotalEstimatedCalories, base.TotalEstimatedCalories)
	}

	for _, q := range []string{"abc", "-5", "0", "NaN"} {
		if code := do(t, s, http.MethodGet, "/api/v1/summary?weight_kg="+q, false, nil); code != http.StatusBadRequest {
			t.Errorf("weight_kg=%s status = %d, want 400", q, code)
		}
	}
}

// TestWeekProgress verifies the per-week rollup endpoint.
func TestWeekProgress(t *testing.T) {
	s, _ := newTestServer(t)
	do(t, s, http.MethodPut, "/api/v1/completions/days/9", true, nil)

	var sum progress.Summary
	if code := do(t, s, http.MethodGet, "/api/v1/program/weeks/2/progress", false, &sum); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if sum.TotalDays != 7 || sum.CompletedDays != 1 {
		t.Errorf("week 2 = %d/%d", sum.CompletedDays, sum.TotalDays)
	}
}

type fakeStats struct{}

func (fakeStats) GetCompletionStats(_ context.Context, userID int) (*storage.CompletionStats, error) {
	return &storage.CompletionStats{ExercisesCompleted: int64(userID * 10)}, nil
}

// TestHandleStats verifies stats are 404 until a source is set.
func TestHandleStats(t *testing.T) {
	s, _ := newTestServer(t)
	if code := do(t, s, http.MethodGet, "/api/v1/stats", false, nil); code != http.StatusNotFound {
		t.Errorf("status without source = %d, want 404", code)
	}

	s.SetStats(fakeStats{})
	var stats storage.CompletionStats
	if code := do(t, s, http.MethodGet, "/api/v1/stats", false, &stats); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if stats.ExercisesCompleted != 10 {
		t.Errorf("exercises = %d, want 10 for user 1", stats.ExercisesCompleted)
	}
}

// TestSetTailscale verifies per-user completions once tailnet identity is on.
func TestSetTailscale(t *testing.T) {
	s, _ := newTestServer(t)
	users := fakeUsers{"alice@example.com": 5}
	whois := fakeWhoIs{resp: aliceWhoIs()}
	s.SetTailscale(whois, users)

	do(t, s, http.MethodPut, "/api/v1/completions/days/1", true, nil)

	var info UserInfo
	do(t, s, http.MethodGet, "/api/v1/me", false, &info)
	if info.Login != "alice@example.com" {
		t.Errorf("login = %q", info.Login)
	}
}

// TestMountMCP verifies mounted handlers see the caller's identity.
func TestMountMCP(t *testing.T) {
	s, _ := newTestServer(t)
	var got int
	s.MountMCP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserID(r)
		w.WriteHeader(http.StatusAccepted)
	}))
	s.SetTailscale(fakeWhoIs{resp: aliceWhoIs()}, fakeUsers{"alice@example.com": 9})

	if code := do(t, s, http.MethodPost, "/mcp", false, nil); code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", code)
	}
	if got != 9 {
		t.Errorf("user = %d, want 9", got)
	}
}

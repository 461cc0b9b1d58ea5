// Package planner binds a generated program to a completion store and
// answers the questions the REST API, the MCP tools and the CLI ask.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/progress"
)

var (
	// ErrDayNotFound is returned for a day outside the program.
	ErrDayNotFound = errors.New("no workout on that day")
	// ErrExerciseNotFound is returned when an instance id is not a
	// top-level exercise of the given day.
	ErrExerciseNotFound = errors.New("exercise not part of that day")
)

// ProgramView is the whole program as served to clients.
type ProgramView struct {
	WeightKg      float64           `json:"weight_kg"`
	StandardWeeks int               `json:"standard_weeks"`
	Weeks         []int             `json:"weeks"`
	Workouts      []program.Workout `json:"workouts"`
}

// Next is the first workout not yet marked complete.
type Next struct {
	Complete bool             `json:"complete"`
	Workout  *program.Workout `json:"workout,omitempty"`
}

// Planner is safe for concurrent use when its Store is.
type Planner struct {
	prog  *program.Program
	store progress.Store
	log   *slog.Logger
}

// New creates a Planner. A nil logger discards output.
func New(prog *program.Program, store progress.Store, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Planner{prog: prog, store: store, log: log}
}

// Program returns the full program.
func (p *Planner) Program(_ context.Context) (*ProgramView, error) {
	return &ProgramView{
		WeightKg:      p.prog.WeightKg(),
		StandardWeeks: p.prog.StandardWeeks(),
		Weeks:         p.prog.Weeks(),
		Workouts:      p.prog.Workouts(),
	}, nil
}

// WorkoutByDay returns one day's workout or ErrDayNotFound.
func (p *Planner) WorkoutByDay(_ context.Context, day int) (*program.Workout, error) {
	w, ok := p.prog.WorkoutByDay(day)
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrDayNotFound)
	}
	return &w, nil
}

// WorkoutsByWeek returns a week's workouts; unknown weeks are empty.
func (p *Planner) WorkoutsByWeek(_ context.Context, week int) ([]program.Workout, error) {
	return p.prog.WorkoutsByWeek(week), nil
}

// WorkoutProgress returns the user's completion snapshot for one day.
func (p *Planner) WorkoutProgress(ctx context.Context, day, userID int) (*progress.Snapshot, error) {
	w, err := p.WorkoutByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	st, err := p.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	snap := progress.WorkoutProgress(*w, st.Exercises)
	return &snap, nil
}

// Summary rolls the user's completions up over the whole program.
// A positive weightKg re-estimates calories at that weight.
func (p *Planner) Summary(ctx context.Context, weightKg float64, userID int) (*progress.Summary, error) {
	st, err := p.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	s := progress.Summarize(p.prog.Workouts(), st.Days, st.Exercises, weightKg)
	return &s, nil
}

// WeekSummary is Summary restricted to one week.
func (p *Planner) WeekSummary(ctx context.Context, week int, weightKg float64, userID int) (*progress.Summary, error) {
	st, err := p.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	s := progress.WeekSummary(p.prog.Workouts(), week, st.Days, st.Exercises, weightKg)
	return &s, nil
}

// NextWorkout returns the first day the user has not completed.
func (p *Planner) NextWorkout(ctx context.Context, userID int) (*Next, error) {
	st, err := p.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	w, ok := progress.NextWorkout(p.prog.Workouts(), st.Days)
	if !ok {
		return &Next{Complete: true}, nil
	}
	return &Next{Workout: &w}, nil
}

// Completions returns the user's raw completion state.
func (p *Planner) Completions(ctx context.Context, userID int) (progress.CompletionState, error) {
	st, err := p.store.Load(ctx, userID)
	if err != nil {
		return st, fmt.Errorf("loading completions: %w", err)
	}
	return st, nil
}

// MarkExercise records or clears one exercise. The id must be a top-level
// instance of that day; alternatives cannot be marked.
func (p *Planner) MarkExercise(ctx context.Context, userID, day, instanceID int, done bool) error {
	w, err := p.WorkoutByDay(ctx, day)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(w.Exercises, func(e program.ExerciseInstance) bool { return e.ID == instanceID }) {
		return fmt.Errorf("exercise %d on day %d: %w", instanceID, day, ErrExerciseNotFound)
	}
	if err := p.store.SetExercise(ctx, userID, day, instanceID, done); err != nil {
		return err
	}
	p.log.Debug("exercise marked", "user_id", userID, "day", day, "id", instanceID, "done", done)
	return nil
}

// MarkDay records or clears a whole day.
func (p *Planner) MarkDay(ctx context.Context, userID, day int, done bool) error {
	if _, err := p.WorkoutByDay(ctx, day); err != nil {
		return err
	}
	if err := p.store.SetDay(ctx, userID, day, done); err != nil {
		return err
	}
	p.log.Debug("day marked", "user_id", userID, "day", day, "done", done)
	return nil
}

// Reset clears all of the user's completions.
func (p *Planner) Reset(ctx context.Context, userID int) error {
	if err := p.store.Reset(ctx, userID); err != nil {
		return err
	}
	p.log.Info("completions reset", "user_id", userID)
	return nil
}

package mcp

import (
	"context"

	"github.com/meltforce/fitprogram/internal/planner"
	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/progress"
)

// DataSource abstracts the program layer for MCP tools. Both *planner.Planner
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	Program(ctx context.Context) (*planner.ProgramView, error)
	WorkoutByDay(ctx context.Context, day int) (*program.Workout, error)
	WorkoutsByWeek(ctx context.Context, week int) ([]program.Workout, error)
	WorkoutProgress(ctx context.Context, day, userID int) (*progress.Snapshot, error)
	Summary(ctx context.Context, weightKg float64, userID int) (*progress.Summary, error)
	WeekSummary(ctx context.Context, week int, weightKg float64, userID int) (*progress.Summary, error)
	NextWorkout(ctx context.Context, userID int) (*planner.Next, error)
}

// Compile-time check: *planner.Planner satisfies DataSource.
var _ DataSource = (*planner.Planner)(nil)

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWorkoutByDay = mcp.NewTool("get_workout_by_day",
	mcp.WithDescription("Get one program day: title, focus, exercises with prescriptions, alternatives, estimated duration and calories, and the target duration."),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("Program day, starting at 1. Days after the standard weeks are bonus days.")),
)

var toolGetWorkoutsByWeek = mcp.NewTool("get_workouts_by_week",
	mcp.WithDescription("Get all workouts of one program week. The week after the standard weeks holds the bonus days."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week, starting at 1")),
)

var toolGetWorkoutProgress = mcp.NewTool("get_workout_progress",
	mcp.WithDescription("Completion state of one day: exercises done out of total, percent, completed minutes and calories."),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("Program day, starting at 1")),
)

var toolGetProgramSummary = mcp.NewTool("get_program_summary",
	mcp.WithDescription("Progress rolled up over the whole program, or one week. Percent is completed minutes over target minutes."),
	mcp.WithNumber("week", mcp.Description("Restrict the summary to this week. Omit for the whole program.")),
	mcp.WithNumber("weight_kg", mcp.Description("Re-estimate calories for this body weight. Omit to use the program's estimates.")),
)

var toolGetNextWorkout = mcp.NewTool("get_next_workout",
	mcp.WithDescription("The first program day not yet marked complete, or complete=true when every day is done."),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutByDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := req.RequireInt("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}

	workout, err := h.ds.WorkoutByDay(ctx, day)
	if err != nil {
		h.log.Error("mcp get_workout_by_day", "day", day, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutsByWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}

	workouts, err := h.ds.WorkoutsByWeek(ctx, week)
	if err != nil {
		h.log.Error("mcp get_workouts_by_week", "week", week, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := req.RequireInt("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}

	snap, err := h.ds.WorkoutProgress(ctx, day, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp get_workout_progress", "day", day, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(snap)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgramSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weightKg := req.GetFloat("weight_kg", 0)
	if weightKg < 0 {
		return mcp.NewToolResultError("weight_kg must be positive"), nil
	}
	week := req.GetInt("week", 0)
	uid := UserIDFromContext(ctx)

	var err error
	var summary any
	if week > 0 {
		summary, err = h.ds.WeekSummary(ctx, week, weightKg, uid)
	} else {
		summary, err = h.ds.Summary(ctx, weightKg, uid)
	}
	if err != nil {
		h.log.Error("mcp get_program_summary", "week", week, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getNextWorkout(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	next, err := h.ds.NextWorkout(ctx, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp get_next_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(next)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

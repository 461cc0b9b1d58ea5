// Package progress projects externally owned completion records onto a
// generated program. Every function here is pure and safe for concurrent use.
package progress

import (
	"math"

	"github.com/meltforce/fitprogram/internal/energy"
	"github.com/meltforce/fitprogram/internal/program"
)

// Snapshot is the completion state of one workout.
type Snapshot struct {
	Day               int     `json:"day"`
	CompletedCount    int     `json:"completed_count"`
	TotalCount        int     `json:"total_count"`
	Percent           int     `json:"percent"`
	CompletedMinutes  float64 `json:"completed_minutes"`
	CompletedCalories float64 `json:"completed_calories"`
}

// Summary rolls completion up over a set of workouts.
type Summary struct {
	CompletedDays          int     `json:"completed_days"`
	TotalDays              int     `json:"total_days"`
	CompletedMinutes       float64 `json:"completed_minutes"`
	TotalTargetMinutes     int     `json:"total_target_minutes"`
	CompletedCalories      float64 `json:"completed_calories"`
	TotalEstimatedCalories float64 `json:"total_estimated_calories"`
	OverallPercent         int     `json:"overall_percent"`
	RemainingMinutes       float64 `json:"remaining_minutes"`
	RemainingCalories      float64 `json:"remaining_calories"`
}

// WorkoutProgress counts the top-level exercises of w marked done in
// completion. Alternatives are not counted.
func WorkoutProgress(w program.Workout, completion map[string]bool) Snapshot {
	return snapshot(w, completion, storedCalories)
}

type calorieFunc func(program.ExerciseInstance) float64

func storedCalories(e program.ExerciseInstance) float64 {
	return e.EstimatedCalories
}

func caloriesAt(weightKg float64) calorieFunc {
	if !(weightKg > 0) {
		return storedCalories
	}
	return func(e program.ExerciseInstance) float64 {
		return energy.Calories(e.Exercise, weightKg)
	}
}

func snapshot(w program.Workout, completion map[string]bool, calories calorieFunc) Snapshot {
	s := Snapshot{Day: w.Day, TotalCount: len(w.Exercises)}
	for _, e := range w.Exercises {
		if !completion[Key(w.Day, e.ID)] {
			continue
		}
		s.CompletedCount++
		s.CompletedMinutes += e.Duration
		s.CompletedCalories += calories(e)
	}
	s.CompletedCalories = energy.Round1(s.CompletedCalories)
	s.Percent = percent(float64(s.CompletedCount), float64(s.TotalCount))
	return s
}

// Summarize folds WorkoutProgress over workouts. The overall percentage is
// minutes completed over minutes targeted, not a day count. When weightKg is
// positive, calories are re-estimated at that weight; otherwise the
// generated estimates are used.
func Summarize(workouts []program.Workout, completedDays map[int]bool, completion map[string]bool, weightKg float64) Summary {
	calories := caloriesAt(weightKg)

	var s Summary
	var totalCalories float64
	for _, w := range workouts {
		s.TotalDays++
		if completedDays[w.Day] {
			s.CompletedDays++
		}
		s.TotalTargetMinutes += w.TargetDuration
		for _, e := range w.Exercises {
			totalCalories += calories(e)
		}

		snap := snapshot(w, completion, calories)
		s.CompletedMinutes += snap.CompletedMinutes
		s.CompletedCalories += snap.CompletedCalories
	}

	s.CompletedCalories = energy.Round1(s.CompletedCalories)
	s.TotalEstimatedCalories = energy.Round1(totalCalories)
	s.OverallPercent = percent(s.CompletedMinutes, float64(s.TotalTargetMinutes))
	s.RemainingMinutes = max(0, float64(s.TotalTargetMinutes)-s.CompletedMinutes)
	s.RemainingCalories = max(0, energy.Round1(s.TotalEstimatedCalories-s.CompletedCalories))
	return s
}

// WeekSummary is Summarize restricted to the workouts tagged with week.
func WeekSummary(workouts []program.Workout, week int, completedDays map[int]bool, completion map[string]bool, weightKg float64) Summary {
	var inWeek []program.Workout
	for _, w := range workouts {
		if w.Week == week {
			inWeek = append(inWeek, w)
		}
	}
	return Summarize(inWeek, completedDays, completion, weightKg)
}

// NextWorkout returns the first workout whose day is not marked complete.
func NextWorkout(workouts []program.Workout, completedDays map[int]bool) (program.Workout, bool) {
	for _, w := range workouts {
		if !completedDays[w.Day] {
			return w, true
		}
	}
	return program.Workout{}, false
}

func percent(done, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * done / total))
}

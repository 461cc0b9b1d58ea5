package progress

import (
	"testing"

	"github.com/meltforce/fitprogram/internal/catalog"
	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/registry"
)

func instance(id int, minutes, kcal float64) program.ExerciseInstance {
	return program.ExerciseInstance{
		ID: id,
		Exercise: program.Exercise{
			Name:              "exercise",
			Difficulty:        catalog.DifficultyEasy,
			Duration:          minutes,
			EstimatedCalories: kcal,
		},
		Alternatives: []program.AlternativeInstance{{ID: program.AlternativeID(id, 0)}},
	}
}

func fiveExerciseWorkout() program.Workout {
	return program.Workout{
		Day:            3,
		TargetDuration: 20,
		Exercises: []program.ExerciseInstance{
			instance(11, 3, 10),
			instance(12, 4, 12.5),
			instance(13, 5, 20),
			instance(14, 2, 5),
			instance(15, 6, 30),
		},
	}
}

// TestWorkoutProgress verifies the worked example: 5 exercises, 2 done
// totalling 7 minutes gives 40%.
func TestWorkoutProgress(t *testing.T) {
	w := fiveExerciseWorkout()
	completion := map[string]bool{
		Key(3, 11): true,
		Key(3, 12): true,
		Key(3, 13): false,
		Key(4, 14): true, // other day, same id range
	}

	s := WorkoutProgress(w, completion)

	if s.TotalCount != 5 {
		t.Errorf("total = %d, want 5", s.TotalCount)
	}
	if s.CompletedCount != 2 {
		t.Errorf("completed = %d, want 2", s.CompletedCount)
	}
	if s.Percent != 40 {
		t.Errorf("percent = %d, want 40", s.Percent)
	}
	if s.CompletedMinutes != 7 {
		t.Errorf("minutes = %v, want 7", s.CompletedMinutes)
	}
	if s.CompletedCalories != 22.5 {
		t.Errorf("calories = %v, want 22.5", s.CompletedCalories)
	}
}

// TestWorkoutProgressIgnoresAlternatives verifies alternative ids are
// neither counted in the total nor as completions.
func TestWorkoutProgressIgnoresAlternatives(t *testing.T) {
	w := fiveExerciseWorkout()
	completion := map[string]bool{"3-11-alt-1": true}

	s := WorkoutProgress(w, completion)
	if s.TotalCount != 5 || s.CompletedCount != 0 {
		t.Errorf("snapshot = %+v, want 0 of 5", s)
	}
}

// TestWorkoutProgressEmpty verifies a workout without exercises reports 0%
// rather than dividing by zero.
func TestWorkoutProgressEmpty(t *testing.T) {
	s := WorkoutProgress(program.Workout{Day: 1}, map[string]bool{"1-1": true})
	if s.Percent != 0 || s.TotalCount != 0 {
		t.Errorf("snapshot = %+v", s)
	}
}

// TestWorkoutProgressNilCompletion verifies a nil completion map is treated
// as nothing done.
func TestWorkoutProgressNilCompletion(t *testing.T) {
	s := WorkoutProgress(fiveExerciseWorkout(), nil)
	if s.CompletedCount != 0 || s.Percent != 0 {
		t.Errorf("snapshot = %+v", s)
	}
}

func generated(t *testing.T) []program.Workout {
	t.Helper()
	p, err := program.Generate(catalog.Default(), registry.Default(), 56)
	if err != nil {
		t.Fatal(err)
	}
	return p.Workouts()
}

// TestSummarizeEmptyCompletion verifies nothing done means 0% and every
// targeted minute remaining.
func TestSummarizeEmptyCompletion(t *testing.T) {
	workouts := generated(t)

	s := Summarize(workouts, nil, map[string]bool{}, 0)

	if s.OverallPercent != 0 {
		t.Errorf("overall = %d, want 0", s.OverallPercent)
	}
	if s.RemainingMinutes != float64(s.TotalTargetMinutes) {
		t.Errorf("remaining = %v, want %d", s.RemainingMinutes, s.TotalTargetMinutes)
	}
	if s.RemainingCalories != s.TotalEstimatedCalories {
		t.Errorf("remaining kcal = %v, want %v", s.RemainingCalories, s.TotalEstimatedCalories)
	}
	if s.TotalDays != len(workouts) || s.CompletedDays != 0 {
		t.Errorf("days = %d/%d", s.CompletedDays, s.TotalDays)
	}
}

// TestSummarizeMinutesBasedPercent verifies the overall percentage follows
// minutes, not the number of completed days.
func TestSummarizeMinutesBasedPercent(t *testing.T) {
	workouts := []program.Workout{
		{Day: 1, TargetDuration: 30, Exercises: []program.ExerciseInstance{instance(1, 10, 40), instance(2, 20, 60)}},
		{Day: 2, TargetDuration: 70, Exercises: []program.ExerciseInstance{instance(3, 70, 200)}},
	}
	completion := map[string]bool{Key(1, 1): true, Key(1, 2): true}
	days := map[int]bool{1: true}

	s := Summarize(workouts, days, completion, 0)

	if s.CompletedDays != 1 || s.TotalDays != 2 {
		t.Errorf("days = %d/%d, want 1/2", s.CompletedDays, s.TotalDays)
	}
	if s.CompletedMinutes != 30 || s.TotalTargetMinutes != 100 {
		t.Errorf("minutes = %v/%d, want 30/100", s.CompletedMinutes, s.TotalTargetMinutes)
	}
	if s.OverallPercent != 30 {
		t.Errorf("overall = %d, want 30 (day count would give 50)", s.OverallPercent)
	}
	if s.CompletedCalories != 100 || s.TotalEstimatedCalories != 300 || s.RemainingCalories != 200 {
		t.Errorf("calories = %v of %v, %v remaining", s.CompletedCalories, s.TotalEstimatedCalories, s.RemainingCalories)
	}
	if s.RemainingMinutes != 70 {
		t.Errorf("remaining = %v, want 70", s.RemainingMinutes)
	}
}

// TestSummarizeRemainingClamped verifies remaining totals never go negative
// when more minutes are done than were targeted.
func TestSummarizeRemainingClamped(t *testing.T) {
	workouts := []program.Workout{
		{Day: 1, TargetDuration: 5, Exercises: []program.ExerciseInstance{instance(1, 10, 40)}},
	}
	s := Summarize(workouts, nil, map[string]bool{Key(1, 1): true}, 0)
	if s.RemainingMinutes != 0 || s.RemainingCalories != 0 {
		t.Errorf("remaining = %v min, %v kcal; want 0, 0", s.RemainingMinutes, s.RemainingCalories)
	}
	if s.OverallPercent != 200 {
		t.Errorf("overall = %d, want 200", s.OverallPercent)
	}
}

// TestSummarizeWeight verifies calories are re-estimated for a supplied
// weight and match the generated estimates at the generation weight.
func TestSummarizeWeight(t *testing.T) {
	workouts := generated(t)

	stored := Summarize(workouts, nil, nil, 0)
	same := Summarize(workouts, nil, nil, 56)
	heavier := Summarize(workouts, nil, nil, 84)

	if stored.TotalEstimatedCalories != same.TotalEstimatedCalories {
		t.Errorf("weight 56 total %v, stored %v", same.TotalEstimatedCalories, stored.TotalEstimatedCalories)
	}
	if heavier.TotalEstimatedCalories <= stored.TotalEstimatedCalories {
		t.Errorf("heavier person burns %v, want more than %v", heavier.TotalEstimatedCalories, stored.TotalEstimatedCalories)
	}
	if heavier.TotalTargetMinutes != stored.TotalTargetMinutes {
		t.Error("weight must not change minutes")
	}
}

// TestWeekSummary verifies the rollup is limited to one week's workouts.
func TestWeekSummary(t *testing.T) {
	workouts := generated(t)
	s := WeekSummary(workouts, 2, map[int]bool{8: true, 1: true}, nil, 0)
	if s.TotalDays != 7 {
		t.Errorf("total days = %d, want 7", s.TotalDays)
	}
	if s.CompletedDays != 1 {
		t.Errorf("completed days = %d, want 1", s.CompletedDays)
	}
}

// TestNextWorkout verifies the first uncompleted day is returned, and none
// once every day is done.
func TestNextWorkout(t *testing.T) {
	workouts := generated(t)

	w, ok := NextWorkout(workouts, map[int]bool{1: true, 2: true, 4: true})
	if !ok || w.Day != 3 {
		t.Errorf("next = day %d (%v), want 3", w.Day, ok)
	}

	all := make(map[int]bool)
	for _, w := range workouts {
		all[w.Day] = true
	}
	if _, ok := NextWorkout(workouts, all); ok {
		t.Error("expected no next workout when all are complete")
	}
}

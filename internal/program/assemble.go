package program

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/meltforce/fitprogram/internal/catalog"
	"github.com/meltforce/fitprogram/internal/energy"
	"github.com/meltforce/fitprogram/internal/registry"
)

type options struct {
	log   *slog.Logger
	weeks int
}

// Option configures Generate.
type Option func(*options)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithWeeks sets the number of standard weeks. Values < 1 are ignored.
func WithWeeks(weeks int) Option {
	return func(o *options) {
		if weeks >= 1 {
			o.weeks = weeks
		}
	}
}

// Generate builds the program for a person weighing weightKg. The registry
// is validated against the catalog first; a *registry.ConfigurationError is
// returned if any blueprint cannot be resolved. Output depends only on the
// inputs.
func Generate(cat *catalog.Catalog, reg *registry.Registry, weightKg float64, opts ...Option) (*Program, error) {
	o := options{weeks: DefaultWeeks}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	if !(weightKg > 0) {
		weightKg = energy.DefaultWeightKg
	}

	if err := reg.Validate(cat); err != nil {
		return nil, err
	}

	in := NewInstantiator(cat, weightKg, o.log)
	ids := NewIDSequence()
	workouts := make([]Workout, 0, o.weeks*registry.DaysPerWeek+len(reg.Bonus))

	for week := 1; week <= o.weeks; week++ {
		for _, t := range reg.Week {
			day := (week-1)*registry.DaysPerWeek + t.Day
			w, err := assemble(in, ids, t, day, week)
			if err != nil {
				return nil, err
			}
			workouts = append(workouts, w)
		}
	}

	next := o.weeks * registry.DaysPerWeek
	for _, b := range reg.Bonus {
		next++
		w, err := assemble(in, ids, b.DayTemplate, next, b.Week)
		if err != nil {
			return nil, err
		}
		w.Bonus = true
		workouts = append(workouts, w)
	}

	o.log.Debug("program generated",
		"days", len(workouts), "instances", ids.Issued(), "weight_kg", weightKg)

	return newProgram(workouts, weightKg, o.weeks), nil
}

func assemble(in *Instantiator, ids *IDSequence, t registry.DayTemplate, day, week int) (Workout, error) {
	w := Workout{
		Day:         day,
		Week:        week,
		TemplateDay: t.Day,
		Title:       t.Title,
		Description: t.Description,
		Focus:       t.Focus,
		Rest:        t.Rest,
		Exercises:   make([]ExerciseInstance, 0, len(t.Blueprint)),
	}

	var calories float64
	for _, entry := range t.Blueprint {
		inst, err := in.Instantiate(entry, week, ids)
		if err != nil {
			return Workout{}, fmt.Errorf("day %d (%s): %w", day, t.Title, err)
		}
		w.Exercises = append(w.Exercises, inst)
		w.EstimatedDuration += inst.Duration
		calories += inst.EstimatedCalories
	}
	w.EstimatedCalories = energy.Round1(calories)
	w.TargetDuration = TargetDuration(t, week, w.EstimatedDuration)

	return w, nil
}

// TargetDuration is the day's planned minutes: the template base plus the
// weekly boost, never less than the rounded sum of exercise durations.
// Rest days get no weekly boost.
func TargetDuration(t registry.DayTemplate, week int, estimated float64) int {
	boost := 0
	if !t.Rest {
		boost = max(week-1, 0) * t.TargetIncrement
	}
	return max(t.TargetDuration+boost, int(math.Round(estimated)))
}

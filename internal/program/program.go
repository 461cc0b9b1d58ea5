// Package program expands the exercise catalog and template registry into a
// concrete multi-week workout program with progressive overload.
package program

import (
	"slices"
)

// DefaultWeeks is the number of standard weeks before bonus days.
const DefaultWeeks = 4

// Workout is one concrete program day.
type Workout struct {
	Day               int                `json:"day"`
	Week              int                `json:"week"`
	TemplateDay       int                `json:"template_day"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Focus             string             `json:"focus"`
	Rest              bool               `json:"rest"`
	Bonus             bool               `json:"bonus,omitempty"`
	Exercises         []ExerciseInstance `json:"exercises"`
	EstimatedDuration float64            `json:"estimated_duration"`
	EstimatedCalories float64            `json:"estimated_calories"`
	TargetDuration    int                `json:"target_duration"`
}

// Program is the ordered, read-only list of workouts for days 1..N.
// Workouts handed out share exercise slices with the program and must not be
// modified.
type Program struct {
	workouts []Workout
	byDay    map[int]int
	weightKg float64
	weeks    int
}

func newProgram(workouts []Workout, weightKg float64, weeks int) *Program {
	p := &Program{
		workouts: workouts,
		byDay:    make(map[int]int, len(workouts)),
		weightKg: weightKg,
		weeks:    weeks,
	}
	for i, w := range workouts {
		p.byDay[w.Day] = i
	}
	return p
}

// Workouts returns every workout in day order.
func (p *Program) Workouts() []Workout {
	return slices.Clone(p.workouts)
}

// Len returns the number of program days.
func (p *Program) Len() int {
	return len(p.workouts)
}

// WorkoutByDay returns the workout for a 1-based program day.
func (p *Program) WorkoutByDay(day int) (Workout, bool) {
	i, ok := p.byDay[day]
	if !ok {
		return Workout{}, false
	}
	return p.workouts[i], true
}

// WorkoutsByWeek returns the workouts tagged with week, in day order.
// Unknown weeks yield an empty slice.
func (p *Program) WorkoutsByWeek(week int) []Workout {
	out := []Workout{}
	for _, w := range p.workouts {
		if w.Week == week {
			out = append(out, w)
		}
	}
	return out
}

// Weeks returns the distinct week numbers present, ascending.
func (p *Program) Weeks() []int {
	var weeks []int
	for _, w := range p.workouts {
		if !slices.Contains(weeks, w.Week) {
			weeks = append(weeks, w.Week)
		}
	}
	slices.Sort(weeks)
	return weeks
}

// WeightKg returns the body weight calories were estimated for.
func (p *Program) WeightKg() float64 {
	return p.weightKg
}

// StandardWeeks returns how many repeating template weeks were generated.
func (p *Program) StandardWeeks() int {
	return p.weeks
}

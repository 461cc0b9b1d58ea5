// Package registry declares the day templates a program is assembled from:
// one training week of seven days plus bonus days appended after the
// standard weeks.
package registry

import (
	"fmt"

	"github.com/meltforce/fitprogram/internal/catalog"
	"go.uber.org/multierr"
)

// DaysPerWeek is the number of templates in one training week.
const DaysPerWeek = 7

// Overrides are shallow-merged onto the resolved definition. Nil fields keep
// the base value. A non-nil Alternatives slice replaces the base list.
type Overrides struct {
	Name         *string
	Description  *string
	Difficulty   *catalog.Difficulty
	Duration     *float64
	Prescription *catalog.Prescription
	Reps         *string
	Optional     *bool
	Alternatives []catalog.ExerciseDefinition
}

// Apply returns def with the overrides merged in. def is modified in place,
// so callers pass an owned copy.
func (o *Overrides) Apply(def catalog.ExerciseDefinition) catalog.ExerciseDefinition {
	if o == nil {
		return def
	}
	if o.Name != nil {
		def.Name = *o.Name
	}
	if o.Description != nil {
		def.Description = *o.Description
	}
	if o.Difficulty != nil {
		def.Difficulty = *o.Difficulty
	}
	if o.Duration != nil {
		def.Duration = *o.Duration
	}
	if o.Prescription != nil {
		p := *o.Prescription
		def.Prescription = &p
	}
	if o.Reps != nil {
		def.Reps = *o.Reps
		if o.Prescription == nil {
			def.Prescription = nil
		}
	}
	if o.Optional != nil {
		def.Optional = *o.Optional
	}
	if o.Alternatives != nil {
		def.Alternatives = make([]catalog.ExerciseDefinition, len(o.Alternatives))
		for i, alt := range o.Alternatives {
			def.Alternatives[i] = alt.Clone()
		}
	}
	return def
}

// BlueprintEntry places one exercise on a template day. Exactly one of Key
// and Inline is set.
type BlueprintEntry struct {
	Key         string
	Inline      *catalog.ExerciseDefinition
	Overrides   *Overrides
	Progressive bool
}

// Ref returns a label for logs and errors.
func (e BlueprintEntry) Ref() string {
	if e.Key != "" {
		return e.Key
	}
	if e.Inline != nil {
		return "inline:" + e.Inline.Name
	}
	return "<empty>"
}

// DayTemplate is one day of the training week.
type DayTemplate struct {
	Day             int // 1..7
	Title           string
	Description     string
	Focus           string
	TargetDuration  int // minutes in week 1
	TargetIncrement int // minutes added per week on training days
	Rest            bool
	Blueprint       []BlueprintEntry
}

// BonusTemplate is a day appended after the standard weeks. Week tags the
// workout explicitly because bonus days sit outside the 7-day cycle.
type BonusTemplate struct {
	DayTemplate
	Week int
}

// Registry is the full, ordered set of templates.
type Registry struct {
	Week  []DayTemplate
	Bonus []BonusTemplate
}

// Templates returns every template in order: the week first, then the bonus days.
func (r *Registry) Templates() []DayTemplate {
	out := make([]DayTemplate, 0, len(r.Week)+len(r.Bonus))
	out = append(out, r.Week...)
	for _, b := range r.Bonus {
		out = append(out, b.DayTemplate)
	}
	return out
}

// ConfigurationError reports template data that cannot be turned into a
// program, such as blueprints pointing at keys the catalog lacks.
type ConfigurationError struct {
	Problems []error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid template registry: %v", multierr.Combine(e.Problems...))
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ConfigurationError) Unwrap() []error {
	return e.Problems
}

// MissingKeyError is a blueprint reference to a key absent from the catalog.
type MissingKeyError struct {
	Template string
	Key      string
}

func (e *MissingKeyError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("unknown exercise %q", e.Key)
	}
	return fmt.Sprintf("template %q references unknown exercise %q", e.Template, e.Key)
}

// Validate checks the registry against cat. All problems are collected and
// returned together as a *ConfigurationError.
func (r *Registry) Validate(cat *catalog.Catalog) error {
	var errs error

	if len(r.Week) != DaysPerWeek {
		errs = multierr.Append(errs, fmt.Errorf("week has %d templates, want %d", len(r.Week), DaysPerWeek))
	}
	for i, t := range r.Week {
		if t.Day != i+1 {
			errs = multierr.Append(errs, fmt.Errorf("template %q at position %d has day %d", t.Title, i+1, t.Day))
		}
	}
	for _, b := range r.Bonus {
		if b.Week < 1 {
			errs = multierr.Append(errs, fmt.Errorf("bonus template %q has no week tag", b.Title))
		}
	}

	for _, t := range r.Templates() {
		for i, e := range t.Blueprint {
			switch {
			case e.Key == "" && e.Inline == nil:
				errs = multierr.Append(errs, fmt.Errorf("template %q entry %d has neither key nor inline definition", t.Title, i+1))
			case e.Key != "" && e.Inline != nil:
				errs = multierr.Append(errs, fmt.Errorf("template %q entry %d has both key %q and an inline definition", t.Title, i+1, e.Key))
			case e.Key != "" && !cat.Has(e.Key):
				errs = multierr.Append(errs, &MissingKeyError{Template: t.Title, Key: e.Key})
			}
		}
	}

	if errs == nil {
		return nil
	}
	return &ConfigurationError{Problems: multierr.Errors(errs)}
}

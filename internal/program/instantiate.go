package program

import (
	"errors"
	"log/slog"
	"math"
	"slices"

	"github.com/meltforce/fitprogram/internal/catalog"
	"github.com/meltforce/fitprogram/internal/energy"
	"github.com/meltforce/fitprogram/internal/registry"
)

// IDSequence hands out instance ids. Each generation run owns its own
// sequence so separate runs never interleave.
type IDSequence struct {
	next int
}

// NewIDSequence returns a sequence whose first id is 1.
func NewIDSequence() *IDSequence {
	return &IDSequence{next: 1}
}

// Next returns the next id.
func (s *IDSequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Issued returns how many ids have been handed out.
func (s *IDSequence) Issued() int {
	return s.next - 1
}

// Instantiator resolves blueprint entries into scaled exercise instances.
type Instantiator struct {
	catalog  *catalog.Catalog
	weightKg float64
	log      *slog.Logger
}

// NewInstantiator creates an Instantiator. A weight <= 0 uses the profile default.
func NewInstantiator(cat *catalog.Catalog, weightKg float64, log *slog.Logger) *Instantiator {
	if !(weightKg > 0) {
		weightKg = energy.DefaultWeightKg
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Instantiator{catalog: cat, weightKg: weightKg, log: log}
}

// Instantiate builds the instance for entry in week, drawing its id from ids.
// The catalog definition is copied before anything is changed.
func (in *Instantiator) Instantiate(entry registry.BlueprintEntry, week int, ids *IDSequence) (ExerciseInstance, error) {
	def, err := in.resolve(entry)
	if err != nil {
		return ExerciseInstance{}, err
	}
	def = entry.Overrides.Apply(def)

	inst := ExerciseInstance{
		ID:          ids.Next(),
		Key:         entry.Key,
		Progressive: entry.Progressive,
		Exercise:    normalize(def),
	}

	if entry.Progressive && !def.IsAccessory() {
		in.progress(&inst, def, week)
	}

	inst.Duration = resolveDuration(inst.Duration, inst.Reps)
	inst.EstimatedCalories = energy.Calories(inst.Exercise, in.weightKg)

	inst.Alternatives = make([]AlternativeInstance, len(def.Alternatives))
	for i, altDef := range def.Alternatives {
		alt := AlternativeInstance{
			ID:       AlternativeID(inst.ID, i),
			Exercise: normalize(altDef),
		}
		alt.Duration = resolveDuration(alt.Duration, alt.Reps)
		alt.EstimatedCalories = energy.Calories(alt.Exercise, in.weightKg)
		inst.Alternatives[i] = alt
	}

	return inst, nil
}

func (in *Instantiator) resolve(entry registry.BlueprintEntry) (catalog.ExerciseDefinition, error) {
	if entry.Inline != nil {
		return entry.Inline.Clone(), nil
	}
	def, ok := in.catalog.Lookup(entry.Key)
	if !ok {
		return catalog.ExerciseDefinition{}, &registry.MissingKeyError{Key: entry.Key}
	}
	return def, nil
}

// progress applies the week's overload factor to the instruction, the
// explicit duration and the difficulty label.
func (in *Instantiator) progress(inst *ExerciseInstance, def catalog.ExerciseDefinition, week int) {
	factor := ScaleFactor(week)

	switch {
	case def.Prescription != nil:
		p := scalePrescription(*def.Prescription, factor)
		inst.Prescription = &p
		inst.Reps = p.String()
	case def.Reps != "":
		scaled, err := ScaleLastNumber(def.Reps, factor)
		if errors.Is(err, ErrNoNumericToken) {
			in.log.Warn("progressive instruction left unscaled",
				"exercise", inst.Name, "reps", def.Reps, "week", week, "error", err)
		}
		inst.Reps = scaled
	}

	if def.Duration > 0 {
		inst.Duration = scaleDuration(def.Duration, factor)
	}
	inst.Difficulty = EscalateDifficulty(def.Difficulty, week)
}

// normalize copies a definition into the instance shape with empty rather
// than nil lists.
func normalize(def catalog.ExerciseDefinition) Exercise {
	e := Exercise{
		Name:              def.Name,
		Category:          def.Category,
		Description:       def.Description,
		Difficulty:        def.Difficulty,
		Duration:          def.Duration,
		Reps:              def.Instructions(),
		TargetMuscles:     slices.Clone(def.TargetMuscles),
		RequiresEquipment: def.RequiresEquipment,
		Equipment:         slices.Clone(def.Equipment),
		Warmup:            def.Warmup,
		Cooldown:          def.Cooldown,
		Optional:          def.Optional,
		VideoURL:          def.VideoURL,
		GIFURL:            def.GIFURL,
	}
	if def.Prescription != nil {
		p := *def.Prescription
		e.Prescription = &p
	}
	if e.TargetMuscles == nil {
		e.TargetMuscles = []string{}
	}
	if e.Equipment == nil {
		e.Equipment = []string{}
	}
	return e
}

// resolveDuration prefers an explicit duration, then an "N minutes" phrase
// in the instruction, then 0.
func resolveDuration(explicit float64, reps string) float64 {
	if explicit > 0 && !math.IsInf(explicit, 0) {
		return explicit
	}
	if m, ok := parseMinutes(reps); ok {
		return m
	}
	return 0
}

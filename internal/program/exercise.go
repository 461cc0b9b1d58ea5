package program

import (
	"strconv"

	"github.com/meltforce/fitprogram/internal/catalog"
)

// Exercise holds the resolved fields shared by instances and alternatives.
type Exercise struct {
	Name              string                `json:"name"`
	Category          string                `json:"category"`
	Description       string                `json:"description,omitempty"`
	Difficulty        catalog.Difficulty    `json:"difficulty"`
	Duration          float64               `json:"duration"`
	Reps              string                `json:"reps,omitempty"`
	Prescription      *catalog.Prescription `json:"prescription,omitempty"`
	EstimatedCalories float64               `json:"estimated_calories"`
	TargetMuscles     []string              `json:"target_muscles"`
	RequiresEquipment bool                  `json:"requires_equipment"`
	Equipment         []string              `json:"equipment"`
	Warmup            bool                  `json:"warmup,omitempty"`
	Cooldown          bool                  `json:"cooldown,omitempty"`
	Optional          bool                  `json:"optional,omitempty"`
	VideoURL          string                `json:"video_url,omitempty"`
	GIFURL            string                `json:"gif_url,omitempty"`
}

// DurationMinutes implements energy.Activity.
func (e Exercise) DurationMinutes() float64 { return e.Duration }

// Level implements energy.Activity.
func (e Exercise) Level() catalog.Difficulty { return e.Difficulty }

// IsAccessory implements energy.Activity.
func (e Exercise) IsAccessory() bool { return e.Warmup || e.Cooldown || e.Optional }

// ExerciseInstance is one exercise placed on one program day. ID is unique
// across the whole program.
type ExerciseInstance struct {
	ID          int    `json:"id"`
	Key         string `json:"key,omitempty"`
	Progressive bool   `json:"progressive,omitempty"`
	Exercise
	Alternatives []AlternativeInstance `json:"alternatives"`
}

// AlternativeInstance is a substitute for its parent instance. Its ID is
// derived from the parent, "<parentID>-alt-<n>", and it is never scaled.
type AlternativeInstance struct {
	ID string `json:"id"`
	Exercise
}

// AlternativeID returns the id of the index-th (zero-based) alternative of parent.
func AlternativeID(parent, index int) string {
	return strconv.Itoa(parent) + "-alt-" + strconv.Itoa(index+1)
}

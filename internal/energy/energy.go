// Package energy estimates exercise energy expenditure from MET values.
package energy

import (
	"math"
	"strings"

	"github.com/meltforce/fitprogram/internal/catalog"
)

// DefaultWeightKg is the profile body weight used when none is supplied.
const DefaultWeightKg = 56.0

// MET tiers, in kcal per kg per hour.
const (
	METLow          = 2.8
	METModerate     = 4.2
	METModerateHigh = 6.0
	METHigh         = 8.0
)

// Activity is anything with a duration and an intensity.
type Activity interface {
	DurationMinutes() float64
	Level() catalog.Difficulty
	IsAccessory() bool
}

// MET selects the tier for an activity. Accessories (warmup, cooldown,
// optional) are always low. Otherwise the difficulty label decides, with
// "hard" checked first so "Medium/Hard" lands in the high tier.
func MET(a Activity) float64 {
	if a.IsAccessory() {
		return METLow
	}
	label := strings.ToLower(a.Level().String())
	switch {
	case strings.Contains(label, "hard"):
		return METHigh
	case strings.Contains(label, "medium"):
		return METModerateHigh
	case strings.Contains(label, "easy"):
		return METModerate
	default:
		return METModerate
	}
}

// Calories returns kcal burned by a over its duration at weightKg, rounded
// to one decimal. A weight <= 0 falls back to DefaultWeightKg.
func Calories(a Activity, weightKg float64) float64 {
	return Estimate(MET(a), weightKg, a.DurationMinutes())
}

// Estimate applies kcal = MET * kg * minutes / 60, rounded to one decimal.
// Non-positive or NaN durations yield exactly 0.
func Estimate(met, weightKg, minutes float64) float64 {
	if !(minutes > 0) {
		return 0
	}
	if !(weightKg > 0) {
		weightKg = DefaultWeightKg
	}
	return Round1(met * weightKg * minutes / 60)
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

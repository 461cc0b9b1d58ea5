package program

import (
	"errors"
	"math"
	"regexp"
	"strconv"

	"github.com/meltforce/fitprogram/internal/catalog"
)

// MaxScalingWeek is the last week that adds to the progression factor.
const MaxScalingWeek = 5

// ErrNoNumericToken means an instruction had no number for progression to scale.
var ErrNoNumericToken = errors.New("instruction has no numeric token to scale")

var (
	numberPattern  = regexp.MustCompile(`\d+(?:\.\d+)?`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)\b`)
)

// ScaleFactor returns the progressive overload multiplier for week:
// 1.0 in week 1, +0.1 per week, capped at 1.4 from week 5 on.
func ScaleFactor(week int) float64 {
	steps := min(max(week-1, 0), MaxScalingWeek-1)
	return float64(10+steps) / 10
}

// scaleCount scales a count by factor, rounding to the nearest integer with
// a floor of 1.
func scaleCount(n, factor float64) int {
	return max(1, int(math.Round(n*factor)))
}

// ScaleLastNumber scales the last number in text, leaving everything else
// untouched, so "3 set x 10 reps" at 1.2 becomes "3 set x 12 reps".
// It returns ErrNoNumericToken and the original text when text has no number.
func ScaleLastNumber(text string, factor float64) (string, error) {
	locs := numberPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, ErrNoNumericToken
	}
	last := locs[len(locs)-1]
	n, err := strconv.ParseFloat(text[last[0]:last[1]], 64)
	if err != nil {
		return text, ErrNoNumericToken
	}
	return text[:last[0]] + strconv.Itoa(scaleCount(n, factor)) + text[last[1]:], nil
}

// scalePrescription scales the per-set amount. Set counts never change.
func scalePrescription(p catalog.Prescription, factor float64) catalog.Prescription {
	p.Amount = scaleCount(float64(p.Amount), factor)
	return p
}

// scaleDuration applies factor to an explicit duration. Durations only grow.
func scaleDuration(minutes, factor float64) float64 {
	return max(minutes, math.Round(minutes*factor))
}

type escalationStep struct {
	from, to catalog.Difficulty
	week     int
}

// difficultyLadder is applied in order, so an Easy exercise in week 4 climbs
// both rungs.
var difficultyLadder = []escalationStep{
	{from: catalog.DifficultyEasy, to: catalog.DifficultyMedium, week: 3},
	{from: catalog.DifficultyMedium, to: catalog.DifficultyMediumHard, week: 4},
}

// EscalateDifficulty returns the difficulty a progressive exercise is
// labelled with in week.
func EscalateDifficulty(d catalog.Difficulty, week int) catalog.Difficulty {
	for _, step := range difficultyLadder {
		if d == step.from && week >= step.week {
			d = step.to
		}
	}
	return d
}

// parseMinutes finds an "N minutes" phrase in text.
func parseMinutes(text string) (float64, bool) {
	m := minutesPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

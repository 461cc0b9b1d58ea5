package catalog

import "strings"

// Difficulty is an ordered intensity level. Higher values are harder.
type Difficulty int

const (
	DifficultyUnknown Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyMediumHard
	DifficultyHard
)

var difficultyLabels = map[Difficulty]string{
	DifficultyUnknown:    "",
	DifficultyEasy:       "Easy",
	DifficultyMedium:     "Medium",
	DifficultyMediumHard: "Medium/Hard",
	DifficultyHard:       "Hard",
}

// String returns the display label, e.g. "Medium/Hard".
func (d Difficulty) String() string {
	return difficultyLabels[d]
}

// ParseDifficulty maps a display label back to a Difficulty.
// Unrecognized labels yield DifficultyUnknown.
func ParseDifficulty(label string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "medium/hard", "medium-hard":
		return DifficultyMediumHard
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// MarshalText encodes the display label so JSON and YAML carry "Medium/Hard"
// rather than an integer.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a display label.
func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = ParseDifficulty(string(text))
	return nil
}

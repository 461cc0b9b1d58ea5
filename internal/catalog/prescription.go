package catalog

import "fmt"

// Unit is what a Prescription amount counts.
type Unit string

const (
	UnitReps         Unit = "reps"
	UnitRepsEachSide Unit = "reps each side"
	UnitSeconds      Unit = "seconds"
	UnitMinutes      Unit = "minutes"
)

// Prescription is the structured form of a set/rep instruction.
// Sets is zero for single-block work such as "45 seconds" or "5 minutes".
// Amount is the per-set quantity and is the only number progression scales.
type Prescription struct {
	Sets   int  `json:"sets,omitempty" yaml:"sets,omitempty"`
	Amount int  `json:"amount" yaml:"amount"`
	Unit   Unit `json:"unit" yaml:"unit"`
}

// String formats the prescription for display:
//
//	{3, 10, reps}   -> "3 set x 10 reps"
//	{0, 45, seconds} -> "45 seconds"
func (p Prescription) String() string {
	if p.Sets > 0 {
		return fmt.Sprintf("%d set x %d %s", p.Sets, p.Amount, p.Unit)
	}
	return fmt.Sprintf("%d %s", p.Amount, p.Unit)
}

// Minutes returns the block length when the prescription is a single
// timed block in minutes, otherwise 0.
func (p Prescription) Minutes() float64 {
	if p.Unit == UnitMinutes && p.Sets == 0 {
		return float64(p.Amount)
	}
	return 0
}

// Sets is shorthand for a multi-set prescription.
func Sets(sets, amount int, unit Unit) *Prescription {
	return &Prescription{Sets: sets, Amount: amount, Unit: unit}
}

// Block is shorthand for a single timed or counted block.
func Block(amount int, unit Unit) *Prescription {
	return &Prescription{Amount: amount, Unit: unit}
}

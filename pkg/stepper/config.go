package stepper

import "time"

// RepeatInterval is the period of the autorepeat timer.
const RepeatInterval = 100 * time.Millisecond

// Config holds the numeric configuration of a stepper.
//
// Config values are normalized when applied, never rejected: a minimum above
// the maximum drags the maximum along, a negative step uses its magnitude,
// and a zero or NaN step keeps the previous step.
type Config struct {
	MinimumValue float64
	MaximumValue float64
	StepValue    float64
	// Wraps cycles out-of-range values to the opposite bound instead of clamping.
	Wraps bool
	// Continuous reports every intermediate change instead of only the value
	// at the end of an interaction.
	Continuous bool
	// Autorepeat keeps changing the value while a button or the thumb is held.
	Autorepeat bool
}

// DefaultConfig returns a 0 to 100 stepper with step 1 that is continuous,
// autorepeats and clamps.
func DefaultConfig() Config {
	return Config{
		MinimumValue: 0,
		MaximumValue: 100,
		StepValue:    1,
		Wraps:        false,
		Continuous:   true,
		Autorepeat:   true,
	}
}

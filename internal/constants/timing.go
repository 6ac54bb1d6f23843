package constants

import "time"

// Timing constants for scheduled fleet actions.
const (
	// BetaShutdownDelay is how long after plan resolution a beta fleet's
	// one-shot scale-to-zero action fires. Forgotten beta fleets
	// self-terminate instead of accruing cost.
	BetaShutdownDelay = 24 * time.Hour

	// MinShutdownRecurrenceInterval is the minimum allowed interval between
	// recurring scheduled shutdowns. Tighter recurrences would fight the
	// externally managed desired capacity.
	MinShutdownRecurrenceInterval = 1 * time.Hour
)

package policy

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dc-tec/runner-fleet-provisioner/internal/constants"
)

// Parser is a cron parser configured for standard 5-field cron expressions,
// the format autoscaling scheduled-action recurrences use.
var Parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ParseRecurrence parses a shutdown recurrence expression and returns the
// schedule.
func ParseRecurrence(expr string) (cron.Schedule, error) {
	schedule, err := Parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence expression %q: %w", expr, err)
	}
	return schedule, nil
}

// RecurrenceInterval estimates the typical interval between recurring
// shutdowns by checking two consecutive runs.
func RecurrenceInterval(expr string) (time.Duration, error) {
	schedule, err := ParseRecurrence(expr)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	next := schedule.Next(now)
	nextNext := schedule.Next(next)

	return nextNext.Sub(next), nil
}

// ValidateRecurrence validates an optional shutdown recurrence expression.
// An empty expression is valid (no recurring shutdown). Recurrences tighter
// than the minimum interval are rejected.
func ValidateRecurrence(expr string) error {
	if expr == "" {
		return nil
	}

	interval, err := RecurrenceInterval(expr)
	if err != nil {
		return err
	}

	if interval < constants.MinShutdownRecurrenceInterval {
		return fmt.Errorf("recurrence %q fires every %s; minimum interval is %s",
			expr, interval, constants.MinShutdownRecurrenceInterval)
	}

	return nil
}

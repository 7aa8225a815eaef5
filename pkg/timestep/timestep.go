// Package timestep parses the compact duration strings used by dataset
// configurations ("90s", "3h", "1d", "1w") into a structured step size for
// advancing the harvest cursor.
package timestep

import (
	"strconv"
	"time"
	"unicode"

	"github.com/glorpus-work/gleaner/pkg/errors"
)

// Unit is the single time unit of a step.
type Unit rune

// Supported units.
const (
	Seconds Unit = 's'
	Minutes Unit = 'm'
	Hours   Unit = 'h'
	Days    Unit = 'd'
	Weeks   Unit = 'w'
)

// Step is a structured duration with exactly one unit. Immutable once parsed.
type Step struct {
	Count int
	Unit  Unit
}

// Parse converts a string like "3h" into a Step. The grammar is one or more
// digits followed by exactly one unit letter from {s, m, h, d, w}. Compound
// durations ("1h30m") are not supported; dataset configs declare a single
// time resolution.
func Parse(s string) (Step, error) {
	if s == "" {
		return Step{}, errors.Wrap(errors.ErrInvalidDuration, "empty time resolution")
	}

	runes := []rune(s)
	unit := Unit(runes[len(runes)-1])
	switch unit {
	case Seconds, Minutes, Hours, Days, Weeks:
	default:
		return Step{}, errors.Wrapf(errors.ErrInvalidDuration, "unknown unit %q in %q", string(unit), s)
	}

	digits := string(runes[:len(runes)-1])
	if digits == "" {
		return Step{}, errors.Wrapf(errors.ErrInvalidDuration, "missing count in %q", s)
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return Step{}, errors.Wrapf(errors.ErrInvalidDuration, "non-numeric count in %q", s)
		}
	}

	count, err := strconv.Atoi(digits)
	if err != nil {
		return Step{}, errors.Wrapf(errors.ErrInvalidDuration, "count in %q does not fit an int", s)
	}
	if count == 0 {
		// A zero step can never advance the cursor.
		return Step{}, errors.Wrapf(errors.ErrInvalidDuration, "zero count in %q", s)
	}

	return Step{Count: count, Unit: unit}, nil
}

// Duration returns the step as a time.Duration.
func (s Step) Duration() time.Duration {
	d := time.Duration(s.Count)
	switch s.Unit {
	case Seconds:
		return d * time.Second
	case Minutes:
		return d * time.Minute
	case Hours:
		return d * time.Hour
	case Days:
		return d * 24 * time.Hour
	case Weeks:
		return d * 7 * 24 * time.Hour
	default:
		return 0
	}
}

// String returns the compact form of the step.
func (s Step) String() string {
	return strconv.Itoa(s.Count) + string(s.Unit)
}

// Package daterange reconciles the partial, possibly ambiguous date bounds a
// user supplies (explicit start, explicit end, day count) into one concrete
// inclusive [start, end] interval in UTC.
package daterange

import (
	"time"

	"github.com/glorpus-work/gleaner/pkg/errors"
)

// DateFormat is the wire format for start/end date arguments.
const DateFormat = "20060102"

// Range is a resolved, inclusive harvest interval. Both bounds are UTC at
// second precision. Invariant: Start is never after End.
type Range struct {
	Start time.Time
	End   time.Time
}

// Options carries the raw user inputs. Nil means "not supplied". The
// mutual-exclusion rules are enforced by Resolve, not here, so a Range can
// be resolved against different reference times in tests.
type Options struct {
	Start   *time.Time
	End     *time.Time
	NumDays *int
}

// ParseOptions builds Options from CLI-style arguments. Empty strings and a
// nil day count mean "not supplied". Start dates keep their hour component
// with minute and second zeroed; end dates are widened to the last second
// of the day.
func ParseOptions(startStr, endStr string, numDays *int) (Options, error) {
	var opts Options

	if startStr != "" {
		parsed, err := time.Parse(DateFormat, startStr)
		if err != nil {
			return Options{}, errors.Wrapf(err, "invalid start date %q (expected YYYYMMDD)", startStr)
		}
		start := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), parsed.Hour(), 0, 0, 0, time.UTC)
		opts.Start = &start
	}

	if endStr != "" {
		parsed, err := time.Parse(DateFormat, endStr)
		if err != nil {
			return Options{}, errors.Wrapf(err, "invalid end date %q (expected YYYYMMDD)", endStr)
		}
		end := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 0, time.UTC)
		opts.End = &end
	}

	opts.NumDays = numDays
	return opts, nil
}

// Resolve turns Options into a Range relative to now (normally time.Now).
// The rules, in priority order:
//
//  1. A start date after the current UTC day fails.
//  2. An end date before the start date fails.
//  3. A day count below 1 fails.
//  4. Supplying all three of start, end and day count fails.
//  5. Day count plus one bound computes the missing bound as the given
//     bound plus/minus (days - 1 second).
//  6. Day count alone anchors the range to end today at 23:59:59.
//  7. No inputs at all harvests today.
//  8. Only a start date runs through the end of today.
//  9. Only an end date collapses the range to the end bound.
func Resolve(opts Options, now time.Time) (Range, error) {
	utcNow := now.UTC()
	today := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 0, 0, 0, 0, time.UTC)
	endOfToday := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 23, 59, 59, 0, time.UTC)

	if opts.Start != nil && opts.Start.After(today) {
		return Range{}, errors.ErrFutureStart
	}
	if opts.Start != nil && opts.End != nil && opts.End.Before(*opts.Start) {
		return Range{}, errors.ErrEndBeforeStart
	}
	if opts.NumDays != nil && *opts.NumDays < 1 {
		return Range{}, errors.ErrInvalidDayCount
	}

	if opts.NumDays != nil {
		if opts.Start != nil && opts.End != nil {
			return Range{}, errors.ErrOverconstrained
		}
		ndays := time.Duration(*opts.NumDays)*24*time.Hour - time.Second
		switch {
		case opts.Start != nil:
			return Range{Start: *opts.Start, End: opts.Start.Add(ndays)}, nil
		case opts.End != nil:
			return Range{Start: opts.End.Add(-ndays), End: *opts.End}, nil
		default:
			return Range{Start: endOfToday.Add(-ndays), End: endOfToday}, nil
		}
	}

	switch {
	case opts.Start != nil && opts.End != nil:
		return Range{Start: *opts.Start, End: *opts.End}, nil
	case opts.Start != nil:
		return Range{Start: *opts.Start, End: endOfToday}, nil
	case opts.End != nil:
		// The range collapses to the end bound: a lone end date harvests
		// that single instant.
		return Range{Start: *opts.End, End: *opts.End}, nil
	default:
		return Range{Start: today, End: endOfToday}, nil
	}
}

package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/gleaner/pkg/errors"
)

// now is the fixed reference instant for every resolution test.
var now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func intPtr(n int) *int { return &n }

func TestParseOptions(t *testing.T) {
	t.Run("start date at midnight", func(t *testing.T) {
		opts, err := ParseOptions("20240101", "", nil)
		require.NoError(t, err)
		require.NotNil(t, opts.Start)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *opts.Start)
		assert.Nil(t, opts.End)
	})

	t.Run("end date widened to last second of day", func(t *testing.T) {
		opts, err := ParseOptions("", "20240110", nil)
		require.NoError(t, err)
		require.NotNil(t, opts.End)
		assert.Equal(t, time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC), *opts.End)
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		_, err := ParseOptions("2024-01-01", "", nil)
		assert.Error(t, err)
		_, err = ParseOptions("", "Jan 10", nil)
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		numDays   *int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "both bounds given",
			start:     "20240101",
			end:       "20240131",
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "single day range",
			start:     "20240101",
			end:       "20240101",
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "only start runs through end of today",
			start:     "20240610",
			wantStart: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "only end collapses to the end bound",
			end:       "20240110",
			wantStart: time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "no inputs harvests today",
			wantStart: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "day count with end date",
			end:       "20240110",
			numDays:   intPtr(3),
			wantStart: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "day count with start date",
			start:     "20240108",
			numDays:   intPtr(3),
			wantStart: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "day count alone ends today",
			numDays:   intPtr(2),
			wantStart: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "future start rejected",
			start:   "20240616",
			wantErr: errors.ErrFutureStart,
		},
		{
			name:    "start today accepted",
			start:   "20240615",
			wantStart: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "end before start rejected",
			start:   "20240110",
			end:     "20240101",
			wantErr: errors.ErrEndBeforeStart,
		},
		{
			name:    "zero day count rejected",
			numDays: intPtr(0),
			wantErr: errors.ErrInvalidDayCount,
		},
		{
			name:    "negative day count rejected",
			numDays: intPtr(-4),
			wantErr: errors.ErrInvalidDayCount,
		},
		{
			name:    "all three inputs rejected",
			start:   "20240201",
			end:     "20240201",
			numDays: intPtr(1),
			wantErr: errors.ErrOverconstrained,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions(tt.start, tt.end, tt.numDays)
			require.NoError(t, err)

			rng, err := Resolve(opts, now)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, rng.Start)
			assert.Equal(t, tt.wantEnd, rng.End)
			assert.False(t, rng.Start.After(rng.End), "resolved start must not be after end")
		})
	}
}

func TestResolveValidationPriority(t *testing.T) {
	// A future start is reported before the day-count conflict.
	opts, err := ParseOptions("20240616", "20240620", intPtr(2))
	require.NoError(t, err)
	_, err = Resolve(opts, now)
	assert.ErrorIs(t, err, errors.ErrFutureStart)
}

func TestResolveStartEqualEndInstant(t *testing.T) {
	// Rule priority: an end date equal to the start date is not "before" it.
	opts, err := ParseOptions("20240101", "20240101", nil)
	require.NoError(t, err)
	rng, err := Resolve(opts, now)
	require.NoError(t, err)
	assert.True(t, rng.Start.Before(rng.End))
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"partial overlap", Interval{at(9, 0), at(17, 0)}, Interval{at(16, 0), at(18, 0)}, true},
		{"contained", Interval{at(9, 0), at(17, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"identical", Interval{at(9, 0), at(17, 0)}, Interval{at(9, 0), at(17, 0)}, true},
		{"back to back", Interval{at(9, 0), at(17, 0)}, Interval{at(17, 0), at(18, 0)}, false},
		{"back to back reversed", Interval{at(17, 0), at(18, 0)}, Interval{at(9, 0), at(17, 0)}, false},
		{"disjoint", Interval{at(9, 0), at(12, 0)}, Interval{at(13, 0), at(14, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestValidateInterval(t *testing.T) {
	errs := ValidateInterval(Interval{Start: at(9, 0), End: at(17, 0)})
	assert.False(t, errs.HasErrors())

	errs = ValidateInterval(Interval{Start: at(17, 0), End: at(9, 0)})
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs, "end_datetime")

	// Zero length is rejected before any overlap check.
	errs = ValidateInterval(Interval{Start: at(9, 0), End: at(9, 0)})
	assert.True(t, errs.HasErrors())
}

func TestValidateShift(t *testing.T) {
	t.Run("valid shift with break", func(t *testing.T) {
		errs := ValidateShift(Interval{Start: at(9, 0), End: at(17, 0)}, 30)
		assert.False(t, errs.HasErrors())
	})

	t.Run("longer than 24 hours", func(t *testing.T) {
		end := at(9, 0).Add(25 * time.Hour)
		errs := ValidateShift(Interval{Start: at(9, 0), End: end}, 0)
		require.True(t, errs.HasErrors())
		assert.Contains(t, errs, "end_datetime")
	})

	t.Run("exactly 24 hours is allowed", func(t *testing.T) {
		end := at(9, 0).Add(24 * time.Hour)
		errs := ValidateShift(Interval{Start: at(9, 0), End: end}, 0)
		assert.False(t, errs.HasErrors())
	})

	t.Run("break equal to duration", func(t *testing.T) {
		errs := ValidateShift(Interval{Start: at(9, 0), End: at(10, 0)}, 60)
		require.True(t, errs.HasErrors())
		assert.Contains(t, errs, "break_duration")
	})

	t.Run("break longer than duration", func(t *testing.T) {
		errs := ValidateShift(Interval{Start: at(9, 0), End: at(10, 0)}, 90)
		assert.Contains(t, errs, "break_duration")
	})

	t.Run("inverted interval reports only interval error", func(t *testing.T) {
		errs := ValidateShift(Interval{Start: at(17, 0), End: at(9, 0)}, 30)
		assert.Contains(t, errs, "end_datetime")
		assert.NotContains(t, errs, "break_duration")
	})
}

func TestFindConflict(t *testing.T) {
	existing := []OwnedInterval{
		{ID: 1, Interval: Interval{Start: at(9, 0), End: at(17, 0)}},
		{ID: 2, Interval: Interval{Start: at(18, 0), End: at(22, 0)}},
	}

	t.Run("overlapping candidate is rejected", func(t *testing.T) {
		conflict, found := FindConflict(Interval{Start: at(16, 0), End: at(18, 0)}, existing)
		require.True(t, found)
		assert.Equal(t, uint(1), conflict.ID)
	})

	t.Run("back to back candidate is accepted", func(t *testing.T) {
		_, found := FindConflict(Interval{Start: at(17, 0), End: at(18, 0)}, existing)
		assert.False(t, found)
	})

	t.Run("no committed intervals", func(t *testing.T) {
		_, found := FindConflict(Interval{Start: at(9, 0), End: at(17, 0)}, nil)
		assert.False(t, found)
	})
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("employee", "already has a shift during this time period")
	errs.Add("end_datetime", "end time must be after start time")
	errs.Add("end_datetime", "shift cannot be longer than 24 hours")

	assert.True(t, errs.HasErrors())
	assert.Len(t, errs["end_datetime"], 2)
	assert.Equal(t,
		"employee: already has a shift during this time period; end_datetime: end time must be after start time, shift cannot be longer than 24 hours",
		errs.Error())
}

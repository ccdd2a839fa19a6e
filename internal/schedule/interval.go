package schedule

import "time"

// MaxShiftDuration is the longest a single shift may run.
const MaxShiftDuration = 24 * time.Hour

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two intervals share a sub-interval of positive
// length. Back-to-back intervals (one ends exactly when the other starts)
// do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// OwnedInterval is a committed interval belonging to some owner, tagged with
// the record id so callers can report which one conflicted.
type OwnedInterval struct {
	ID uint
	Interval
}

// ValidateInterval checks the basic interval invariant: end strictly after
// start. Zero-length intervals are rejected here, before any overlap check.
func ValidateInterval(iv Interval) FieldErrors {
	errs := FieldErrors{}
	if !iv.End.After(iv.Start) {
		errs.Add("end_datetime", "end time must be after start time")
	}
	return errs
}

// ValidateShift applies the shift business rules on top of the interval
// invariant: a shift runs at most 24 hours and the unpaid break must be
// strictly shorter than the shift itself.
func ValidateShift(iv Interval, breakMinutes int) FieldErrors {
	errs := ValidateInterval(iv)

	if iv.End.After(iv.Start) {
		if iv.Duration() > MaxShiftDuration {
			errs.Add("end_datetime", "shift cannot be longer than 24 hours")
		}
		if float64(breakMinutes) >= iv.Duration().Minutes() {
			errs.Add("break_duration", "break duration cannot be longer than shift duration")
		}
	}

	return errs
}

// FindConflict scans the owner's committed intervals for one overlapping the
// candidate. The caller pre-filters the slice: same owner only, cancelled
// intervals and the interval being updated already excluded. A linear scan is
// enough, cardinality per owner stays in the tens.
func FindConflict(candidate Interval, existing []OwnedInterval) (OwnedInterval, bool) {
	for _, iv := range existing {
		if candidate.Overlaps(iv.Interval) {
			return iv, true
		}
	}
	return OwnedInterval{}, false
}

package booking

import (
	"time"

	"fritidsbo/models"
)

// OverlapPolicy controls which reservation statuses block a date range.
type OverlapPolicy struct {
	// BlockCancelled keeps cancelled reservations in the overlap check.
	// The legacy tables never filtered on status; the default policy
	// frees the dates when a reservation is cancelled.
	BlockCancelled bool
}

// Blocks reports whether a reservation with the given status occupies its
// date range under this policy.
func (p OverlapPolicy) Blocks(status string) bool {
	if status == models.StatusCancelled {
		return p.BlockCancelled
	}
	return true
}

// AvailabilityResult is the outcome of an availability check.
type AvailabilityResult struct {
	Available bool
	// Konflikt holds the first conflicting reservation when Available is false.
	Konflikt *models.Reservation
}

// CheckAvailability decides whether [start, end] is free given the existing
// reservations for a property. Overlap is inclusive at both boundaries:
// a candidate that starts on the day an existing stay ends still conflicts
// (no back-to-back turnover on the same day).
//
// Pure function of its inputs; safe to call concurrently. Reservations whose
// stored dates do not parse are skipped.
func CheckAvailability(existing []models.Reservation, start, end time.Time, policy OverlapPolicy) (AvailabilityResult, error) {
	if !start.Before(end) {
		return AvailabilityResult{}, &InvalidRangeError{
			StartDatum: start.Format(models.DateLayout),
			SlutDatum:  end.Format(models.DateLayout),
		}
	}

	for i := range existing {
		res := &existing[i]
		if !policy.Blocks(res.Status) {
			continue
		}
		resStart, resEnd, err := res.Period()
		if err != nil {
			continue
		}
		// existing.start <= candidate.end AND existing.end >= candidate.start
		if !resStart.After(end) && !resEnd.Before(start) {
			return AvailabilityResult{Available: false, Konflikt: res}, nil
		}
	}
	return AvailabilityResult{Available: true}, nil
}

package booking

import (
	"fmt"

	"fritidsbo/models"
)

// ValidationError signals a missing or malformed required field. It is
// rejected before any storage I/O.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("obligatoriskt fält saknas eller är ogiltigt: %s", e.Field)
}

// InvalidRangeError signals a non-chronological or zero-night date range.
type InvalidRangeError struct {
	StartDatum string
	SlutDatum  string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("ogiltigt datumintervall: %s - %s", e.StartDatum, e.SlutDatum)
}

// UnavailableError is the business-rule rejection for a date range that
// collides with an existing reservation. Konflikt carries only the
// conflicting dates, never guest details.
type UnavailableError struct {
	Konflikt models.DateRange
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("datumen är redan bokade (%s - %s)", e.Konflikt.StartDatum, e.Konflikt.SlutDatum)
}

// StorageError wraps a persistence failure during a write. The caller may
// retry the whole submission.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

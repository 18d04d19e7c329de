package booking

import (
	"context"
	"time"

	reservationRepo "fritidsbo/database/repository/reservation"
	"fritidsbo/models"

	"go.uber.org/zap"
)

// BookingService is the reservation workflow: availability checks, booking
// submissions and the administrative status path.
type BookingService interface {
	// Reserve runs the full submission: field validation, availability check
	// and creation, serialized per property.
	Reserve(ctx context.Context, input models.ReservationInput) (*models.Reservation, error)
	// CheckDates answers the availability pre-check. It uses the same engine
	// as Reserve so the pre-check and the submission can never disagree.
	CheckDates(ctx context.Context, fastighetID, startDatum, slutDatum string) (*models.AvailabilityResponse, error)
	// ListForProperty returns the reservations for a property, degrading
	// storage failures to an empty list so the calendar stays usable.
	ListForProperty(ctx context.Context, fastighetID string) ([]models.Reservation, error)
	// ListAll returns every reservation, for the admin overview.
	ListAll(ctx context.Context) ([]models.Reservation, error)
	// UpdateStatus confirms or cancels a reservation.
	UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error)
	// ExpireStale cancels unconfirmed reservations whose stay ended more than
	// maxAge before now. Returns the number of reservations cancelled.
	ExpireStale(ctx context.Context, now time.Time, maxAge time.Duration) (int, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo   reservationRepo.ReservationRepository
	Policy OverlapPolicy
	Logger *zap.Logger

	locks *propertyLockStore
}

// NewDefaultBookingService constructs the booking service.
func NewDefaultBookingService(repo reservationRepo.ReservationRepository, policy OverlapPolicy, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:   repo,
		Policy: policy,
		Logger: logger,
		locks:  newPropertyLockStore(),
	}
}

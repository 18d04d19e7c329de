package booking

import (
	"context"
	"strings"
	"time"

	"fritidsbo/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Availability messages shown to the booking client.
const (
	msgAvailable   = "Datumen är tillgängliga"
	msgUnavailable = "Datumen är redan bokade"
)

// Reserve validates the submission, checks availability and persists the
// reservation. The check and the create are guarded by a per-property lock:
// two concurrent submissions for the same property cannot both pass the
// availability check and double-book a range.
func (s *DefaultBookingService) Reserve(ctx context.Context, input models.ReservationInput) (*models.Reservation, error) {
	if err := validateRequired(input); err != nil {
		return nil, err
	}
	start, end, err := parsePeriod(input.StartDatum, input.SlutDatum)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, &InvalidRangeError{StartDatum: input.StartDatum, SlutDatum: input.SlutDatum}
	}

	lock := s.locks.get(input.FastighetID)
	lock.Lock()
	defer lock.Unlock()

	existing := s.fetchExisting(ctx, input.FastighetID)
	result, err := CheckAvailability(existing, start, end, s.Policy)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, &UnavailableError{Konflikt: models.DateRange{
			StartDatum: result.Konflikt.StartDatum,
			SlutDatum:  result.Konflikt.SlutDatum,
		}}
	}

	res := &models.Reservation{
		ID:          uuid.New().String(),
		FastighetID: input.FastighetID,
		StartDatum:  input.StartDatum,
		SlutDatum:   input.SlutDatum,
		GastNamn:    input.GastNamn,
		GastEmail:   input.GastEmail,
		GastTelefon: input.GastTelefon,
		Meddelande:  input.Meddelande,
		Status:      models.StatusUnconfirmed,
		SkapadDatum: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return nil, &StorageError{Op: "create reservation", Err: err}
	}

	s.Logger.Info("reservation created",
		zap.String("id", res.ID),
		zap.String("fastighetId", res.FastighetID),
		zap.String("startDatum", res.StartDatum),
		zap.String("slutDatum", res.SlutDatum),
	)
	return res, nil
}

// CheckDates answers the availability pre-check endpoint.
func (s *DefaultBookingService) CheckDates(ctx context.Context, fastighetID, startDatum, slutDatum string) (*models.AvailabilityResponse, error) {
	if strings.TrimSpace(fastighetID) == "" {
		return nil, &ValidationError{Field: "fastighetId"}
	}
	start, end, err := parsePeriod(startDatum, slutDatum)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, &InvalidRangeError{StartDatum: startDatum, SlutDatum: slutDatum}
	}

	existing := s.fetchExisting(ctx, fastighetID)
	result, err := CheckAvailability(existing, start, end, s.Policy)
	if err != nil {
		return nil, err
	}

	resp := &models.AvailabilityResponse{Available: result.Available, Message: msgAvailable}
	if !result.Available {
		resp.Message = msgUnavailable
		resp.Konflikt = &models.DateRange{
			StartDatum: result.Konflikt.StartDatum,
			SlutDatum:  result.Konflikt.SlutDatum,
		}
	}
	return resp, nil
}

// ListForProperty returns the reservations for a property. Storage failures
// degrade to an empty list so the booking calendar keeps working against a
// partially provisioned backend.
func (s *DefaultBookingService) ListForProperty(ctx context.Context, fastighetID string) ([]models.Reservation, error) {
	if strings.TrimSpace(fastighetID) == "" {
		return nil, &ValidationError{Field: "fastighetId"}
	}
	return s.fetchExisting(ctx, fastighetID), nil
}

// ListAll returns every reservation for the admin overview. Unlike the
// display path this surfaces storage failures.
func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list reservations", Err: err}
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return reservations, nil
}

// UpdateStatus confirms or cancels a reservation.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id"}
	}
	if !models.IsValidStatus(status) {
		return nil, &ValidationError{Field: "status"}
	}
	updated, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, &StorageError{Op: "update reservation status", Err: err}
	}
	s.Logger.Info("reservation status updated", zap.String("id", id), zap.String("status", status))
	return updated, nil
}

// ExpireStale cancels unconfirmed reservations whose stay ended more than
// maxAge before now.
func (s *DefaultBookingService) ExpireStale(ctx context.Context, now time.Time, maxAge time.Duration) (int, error) {
	reservations, err := s.Repo.ListAll(ctx)
	if err != nil {
		return 0, &StorageError{Op: "list reservations", Err: err}
	}

	cutoff := now.Add(-maxAge)
	expired := 0
	for i := range reservations {
		res := &reservations[i]
		if res.Status != models.StatusUnconfirmed {
			continue
		}
		_, end, err := res.Period()
		if err != nil {
			s.Logger.Warn("skipping reservation with unparseable dates", zap.String("id", res.ID))
			continue
		}
		if end.Before(cutoff) {
			if _, err := s.Repo.UpdateStatus(ctx, res.ID, models.StatusCancelled); err != nil {
				s.Logger.Error("failed to expire reservation", zap.String("id", res.ID), zap.Error(err))
				continue
			}
			expired++
		}
	}
	if expired > 0 {
		s.Logger.Info("expired stale unconfirmed reservations", zap.Int("count", expired))
	}
	return expired, nil
}

// fetchExisting loads the reservations for a property, degrading storage
// failures to "nothing booked". The failure is logged, never surfaced.
func (s *DefaultBookingService) fetchExisting(ctx context.Context, fastighetID string) []models.Reservation {
	reservations, err := s.Repo.ListByProperty(ctx, fastighetID)
	if err != nil {
		s.Logger.Warn("failed to fetch reservations, treating property as unbooked",
			zap.String("fastighetId", fastighetID),
			zap.Error(err),
		)
		return []models.Reservation{}
	}
	if reservations == nil {
		return []models.Reservation{}
	}
	return reservations
}

func validateRequired(input models.ReservationInput) error {
	required := []struct {
		field string
		value string
	}{
		{"fastighetId", input.FastighetID},
		{"startDatum", input.StartDatum},
		{"slutDatum", input.SlutDatum},
		{"gastNamn", input.GastNamn},
		{"gastEmail", input.GastEmail},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}
	return nil
}

func parsePeriod(startDatum, slutDatum string) (time.Time, time.Time, error) {
	start, err := time.Parse(models.DateLayout, startDatum)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "startDatum"}
	}
	end, err := time.Parse(models.DateLayout, slutDatum)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "slutDatum"}
	}
	return start, end, nil
}

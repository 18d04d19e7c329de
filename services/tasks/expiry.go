package tasks

import (
	"context"
	"encoding/json"
	"time"

	"fritidsbo/services/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeExpireReservations = "bokningar:expire"

// ExpirePayload parameterizes a single expiry run.
type ExpirePayload struct {
	MaxAgeDays int `json:"maxAgeDays"`
}

// NewExpireTask builds the periodic expiry task.
func NewExpireTask(maxAgeDays int) (*asynq.Task, error) {
	b, err := json.Marshal(ExpirePayload{MaxAgeDays: maxAgeDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExpireReservations, b), nil
}

// ExpiryHandler processes expiry tasks by cancelling stale unconfirmed
// reservations through the booking service.
type ExpiryHandler struct {
	Booking booking.BookingService
	Logger  *zap.Logger
}

func (h *ExpiryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p ExpirePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	maxAge := time.Duration(p.MaxAgeDays) * 24 * time.Hour
	expired, err := h.Booking.ExpireStale(ctx, time.Now().UTC(), maxAge)
	if err != nil {
		h.Logger.Error("expiry run failed", zap.Error(err))
		return err
	}
	h.Logger.Info("expiry run completed", zap.Int("expired", expired))
	return nil
}

// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"fritidsbo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository stores and retrieves reservation records.
//
// ListByProperty returns storage failures as errors; the booking service
// decides whether to degrade them to "nothing booked" for display paths.
// Create must either fully persist the record or return an error, never
// partially write.
type ReservationRepository interface {
	ListByProperty(ctx context.Context, fastighetID string) ([]models.Reservation, error)
	ListAll(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, res *models.Reservation) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error)
	DeleteByProperty(ctx context.Context, fastighetID string) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB-backed ReservationRepository.
func NewMongoReservationRepo(client *mongo.Client, dbName string) ReservationRepository {
	return &mongoReservationRepo{
		coll: client.Database(dbName).Collection("bokningar"),
	}
}

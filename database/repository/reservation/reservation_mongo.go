// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"fritidsbo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (r *mongoReservationRepo) ListByProperty(ctx context.Context, fastighetID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"fastighetId": fastighetID}
	opts := options.Find().SetSort(bson.D{{Key: "startDatum", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for property %s: %w", fastighetID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (r *mongoReservationRepo) ListAll(ctx context.Context) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDatum", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (r *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("reservation %s not found", id)
		}
		return nil, fmt.Errorf("failed to update reservation %s: %w", id, err)
	}
	return &updated, nil
}

func (r *mongoReservationRepo) DeleteByProperty(ctx context.Context, fastighetID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"fastighetId": fastighetID}); err != nil {
		return fmt.Errorf("failed to delete reservations for property %s: %w", fastighetID, err)
	}
	return nil
}

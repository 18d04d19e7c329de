// File: database/repository/bild/bild_mongo.go
package bildRepo

import (
	"context"
	"fmt"
	"time"

	"fritidsbo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (r *mongoBildRepo) GetAll(ctx context.Context) ([]models.Bild, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoBildRepo) GetByProperty(ctx context.Context, fastighetID string) ([]models.Bild, error) {
	return r.find(ctx, bson.M{"fastighetId": fastighetID})
}

func (r *mongoBildRepo) find(ctx context.Context, filter bson.M) ([]models.Bild, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "ordning", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bilder: %w", err)
	}
	defer cursor.Close(ctx)

	var bilder []models.Bild
	if err := cursor.All(ctx, &bilder); err != nil {
		return nil, fmt.Errorf("error decoding bilder: %w", err)
	}
	return bilder, nil
}

func (r *mongoBildRepo) Create(ctx context.Context, b *models.Bild) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert bild: %w", err)
	}
	return nil
}

func (r *mongoBildRepo) DeleteByProperty(ctx context.Context, fastighetID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"fastighetId": fastighetID}); err != nil {
		return fmt.Errorf("failed to delete bilder for property %s: %w", fastighetID, err)
	}
	return nil
}

// File: database/repository/fastighet/fastighet_mongo.go
package fastighetRepo

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

// ErrNotFound is returned when a property id has no matching record.
var ErrNotFound = fmt.Errorf("fastighet not found")

func (r *mongoFastighetRepo) GetAll(ctx context.Context) ([]models.Fastighet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "namn", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fastigheter: %w", err)
	}
	defer cursor.Close(ctx)

	var fastigheter []models.Fastighet
	if err := cursor.All(ctx, &fastigheter); err != nil {
		return nil, fmt.Errorf("error decoding fastigheter: %w", err)
	}
	return fastigheter, nil
}

func (r *mongoFastighetRepo) GetByID(ctx context.Context, id string) (*models.Fastighet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var f models.Fastighet
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch fastighet %s: %w", id, err)
	}
	return &f, nil
}

func (r *mongoFastighetRepo) Create(ctx context.Context, f *models.Fastighet) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to insert fastighet: %w", err)
	}
	return nil
}

func (r *mongoFastighetRepo) Update(ctx context.Context, f *models.Fastighet) (*models.Fastighet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": f.ID}
	update := bson.M{"$set": f}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Fastighet
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update fastighet %s: %w", f.ID, err)
	}
	return &updated, nil
}

func (r *mongoFastighetRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete fastighet %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// File: database/repository/fastighet/interface.go
package fastighetRepo

import (
	"context"

	"fritidsbo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FastighetRepository stores the property catalog.
type FastighetRepository interface {
	GetAll(ctx context.Context) ([]models.Fastighet, error)
	GetByID(ctx context.Context, id string) (*models.Fastighet, error)
	Create(ctx context.Context, f *models.Fastighet) error
	Update(ctx context.Context, f *models.Fastighet) (*models.Fastighet, error)
	Delete(ctx context.Context, id string) error
}

type mongoFastighetRepo struct {
	coll *mongo.Collection
}

// NewMongoFastighetRepo constructs a MongoDB-backed FastighetRepository.
func NewMongoFastighetRepo(client *mongo.Client, dbName string) FastighetRepository {
	return &mongoFastighetRepo{
		coll: client.Database(dbName).Collection("fastigheter"),
	}
}

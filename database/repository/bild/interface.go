// File: database/repository/bild/interface.go
package bildRepo

import (
	"context"

	"fritidsbo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BildRepository stores gallery image references.
type BildRepository interface {
	GetAll(ctx context.Context) ([]models.Bild, error)
	GetByProperty(ctx context.Context, fastighetID string) ([]models.Bild, error)
	Create(ctx context.Context, b *models.Bild) error
	DeleteByProperty(ctx context.Context, fastighetID string) error
}

type mongoBildRepo struct {
	coll *mongo.Collection
}

// NewMongoBildRepo constructs a MongoDB-backed BildRepository.
func NewMongoBildRepo(client *mongo.Client, dbName string) BildRepository {
	return &mongoBildRepo{
		coll: client.Database(dbName).Collection("bilder"),
	}
}

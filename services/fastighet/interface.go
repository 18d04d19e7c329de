package fastighet

import (
	"context"

	bildRepo "fritidsbo/database/repository/bild"
	fastighetRepo "fritidsbo/database/repository/fastighet"
	reservationRepo "fritidsbo/database/repository/reservation"
	"fritidsbo/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FastighetService manages the property catalog and its image gallery.
type FastighetService interface {
	GetAll(ctx context.Context) ([]models.Fastighet, error)
	// GetByID returns a property with its gallery images embedded.
	GetByID(ctx context.Context, id string) (*models.Fastighet, error)
	Create(ctx context.Context, f *models.Fastighet) (*models.Fastighet, error)
	Update(ctx context.Context, f *models.Fastighet) (*models.Fastighet, error)
	// Delete removes a property together with its reservations and images.
	Delete(ctx context.Context, id string) error

	ListBilder(ctx context.Context, fastighetID string) ([]models.Bild, error)
	AddBild(ctx context.Context, b *models.Bild) (*models.Bild, error)
}

// DefaultFastighetService is the production implementation.
type DefaultFastighetService struct {
	Repo            fastighetRepo.FastighetRepository
	BildRepo        bildRepo.BildRepository
	ReservationRepo reservationRepo.ReservationRepository
	// Cache holds the property listing for a short TTL. May be nil, in
	// which case every read goes to storage.
	Cache  *redis.Client
	Logger *zap.Logger
}

package fastighet

import (
	"context"
	"encoding/json"
	"time"

	"fritidsbo/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// listingCacheKey holds the serialized property listing. Reservations are
// deliberately never cached; only the slow-moving catalog is.
const (
	listingCacheKey = "fastigheter:all"
	listingCacheTTL = 60 * time.Second
)

func (s *DefaultFastighetService) GetAll(ctx context.Context) ([]models.Fastighet, error) {
	if cached := s.readListingCache(ctx); cached != nil {
		return cached, nil
	}

	fastigheter, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if fastigheter == nil {
		fastigheter = []models.Fastighet{}
	}
	s.writeListingCache(ctx, fastigheter)
	return fastigheter, nil
}

func (s *DefaultFastighetService) GetByID(ctx context.Context, id string) (*models.Fastighet, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Gallery lookup failures leave the property usable without images.
	bilder, err := s.BildRepo.GetByProperty(ctx, id)
	if err != nil {
		s.Logger.Warn("failed to fetch bilder for fastighet", zap.String("id", id), zap.Error(err))
	} else {
		f.Bilder = bilder
	}
	return f, nil
}

func (s *DefaultFastighetService) Create(ctx context.Context, f *models.Fastighet) (*models.Fastighet, error) {
	now := time.Now().UTC()
	f.ID = uuid.New().String()
	f.Skapad = now
	f.SenastUppdaterad = now
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, err
	}
	s.invalidateListingCache(ctx)
	return f, nil
}

func (s *DefaultFastighetService) Update(ctx context.Context, f *models.Fastighet) (*models.Fastighet, error) {
	f.SenastUppdaterad = time.Now().UTC()
	updated, err := s.Repo.Update(ctx, f)
	if err != nil {
		return nil, err
	}
	s.invalidateListingCache(ctx)
	return updated, nil
}

// Delete removes the property and cascades to its reservations and images.
// The property record goes last so a partial failure leaves the catalog
// entry visible rather than orphaning bookings silently.
func (s *DefaultFastighetService) Delete(ctx context.Context, id string) error {
	if err := s.ReservationRepo.DeleteByProperty(ctx, id); err != nil {
		return err
	}
	if err := s.BildRepo.DeleteByProperty(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListingCache(ctx)
	s.Logger.Info("fastighet deleted with cascade", zap.String("id", id))
	return nil
}

func (s *DefaultFastighetService) ListBilder(ctx context.Context, fastighetID string) ([]models.Bild, error) {
	var (
		bilder []models.Bild
		err    error
	)
	if fastighetID == "" {
		bilder, err = s.BildRepo.GetAll(ctx)
	} else {
		bilder, err = s.BildRepo.GetByProperty(ctx, fastighetID)
	}
	if err != nil {
		return nil, err
	}
	if bilder == nil {
		bilder = []models.Bild{}
	}
	return bilder, nil
}

func (s *DefaultFastighetService) AddBild(ctx context.Context, b *models.Bild) (*models.Bild, error) {
	b.ID = uuid.New().String()
	if err := s.BildRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *DefaultFastighetService) readListingCache(ctx context.Context) []models.Fastighet {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, listingCacheKey).Result()
	if err != nil {
		return nil
	}
	var fastigheter []models.Fastighet
	if err := json.Unmarshal([]byte(data), &fastigheter); err != nil {
		return nil
	}
	return fastigheter
}

func (s *DefaultFastighetService) writeListingCache(ctx context.Context, fastigheter []models.Fastighet) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(fastigheter)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, listingCacheKey, data, listingCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache fastighet listing", zap.Error(err))
	}
}

func (s *DefaultFastighetService) invalidateListingCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, listingCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate fastighet listing cache", zap.Error(err))
	}
}

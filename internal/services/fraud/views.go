package fraud

import (
	"context"

	"fraud-detection-backend/internal/geo"
	"fraud-detection-backend/internal/models"
	"fraud-detection-backend/internal/repository"
)

// FraudDetail is one fraud with the cardholder-to-merchant distance.
type FraudDetail struct {
	Fraud      *models.Fraud `json:"fraud"`
	DistanceKm float64       `json:"distance_km"`
}

// List returns page (1-based) of frauds, newest first, at the configured page size.
func (s *Service) List(ctx context.Context, page int) (repository.FraudPage, error) {
	return s.store.Paginate(ctx, page, s.pageSize)
}

// Get returns repository.ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id uint) (*FraudDetail, error) {
	fraud, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	km := geo.DistanceKm(fraud.Lat, fraud.Long, fraud.MerchLat, fraud.MerchLong)
	return &FraudDetail{Fraud: fraud, DistanceKm: geo.RoundKm(km)}, nil
}

func (s *Service) Recent(ctx context.Context) ([]models.Fraud, error) {
	return s.store.Recent(ctx, RecentLimit)
}

func (s *Service) Stats(ctx context.Context) (repository.FraudStats, error) {
	return s.store.Stats(ctx)
}

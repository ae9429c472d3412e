package service

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

// StationService exposes the station directory. Stations are read-only from
// the API's perspective; they are provisioned out of band.
type StationService struct {
	repo ports.StationRepository
}

func NewStationService(repo ports.StationRepository) *StationService {
	return &StationService{repo: repo}
}

func (s *StationService) List(ctx context.Context) ([]domain.Station, error) {
	return s.repo.List(ctx)
}

package ports

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

type StationService interface {
	List(ctx context.Context) ([]domain.Station, error)
}

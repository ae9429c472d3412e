package ports

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

type StationRepository interface {
	List(ctx context.Context) ([]domain.Station, error)
	FindByCode(ctx context.Context, code string) (*domain.Station, error)
	CountByStatus(ctx context.Context) (total, active int64, err error)
}

package ports

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

type ReadingRepository interface {
	Insert(ctx context.Context, reading *domain.Reading) error
	// List returns readings newest first. When stationCode is non-empty only
	// that station's readings are returned.
	List(ctx context.Context, stationCode string) ([]domain.Reading, error)
	// LatestPerStation returns the most recent reading of every station that
	// has reported at least once.
	LatestPerStation(ctx context.Context) ([]domain.Reading, error)
}

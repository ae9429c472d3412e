package ports

import (
	"context"
	"time"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

// ReadingInput is a telemetry sample as pushed by a genset gateway.
type ReadingInput struct {
	StationCode string
	Voltage     float64
	Current     float64
	Power       float64
	Timestamp   time.Time
}

type TelemetryService interface {
	// List returns readings, optionally scoped to one station code.
	List(ctx context.Context, stationCode string) ([]domain.Reading, error)
	// Record validates, deduplicates, and persists one pushed sample.
	Record(ctx context.Context, in ReadingInput) error
}

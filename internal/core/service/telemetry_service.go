package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gridsentry/genset-monitoring/internal/api/metrics"
	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

// DedupChecker abstracts the ingest idempotency store (Redis). Gateways retry
// pushes on flaky links, so the same sample may arrive more than once.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, stationCode string, ts time.Time) (bool, error)
	Mark(ctx context.Context, stationCode string, ts time.Time) error
}

type telemetryService struct {
	readings ports.ReadingRepository
	stations ports.StationRepository
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewTelemetryService returns a TelemetryService implementation.
func NewTelemetryService(
	readings ports.ReadingRepository,
	stations ports.StationRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.TelemetryService {
	return &telemetryService{
		readings: readings,
		stations: stations,
		dedup:    dedup,
		log:      log,
	}
}

// List returns readings newest first, optionally scoped to one station code.
// Filtering happens here rather than in the consumer because the reading set
// can be large.
func (s *telemetryService) List(ctx context.Context, stationCode string) ([]domain.Reading, error) {
	return s.readings.List(ctx, stationCode)
}

// Record validates, deduplicates, and persists a single pushed sample.
// Deduplication keys on the gateway-supplied timestamp; a sample without one
// has no idempotency key and is always treated as new.
func (s *telemetryService) Record(ctx context.Context, in ports.ReadingInput) error {
	start := time.Now()

	if !in.Timestamp.IsZero() {
		isDup, err := s.dedup.IsDuplicate(ctx, in.StationCode, in.Timestamp)
		if err != nil {
			s.log.Warn().Err(err).Str("station", in.StationCode).Msg("dedup check failed, processing anyway")
			metrics.IngestDedupTotal.WithLabelValues("error").Inc()
		} else if isDup {
			s.log.Debug().Str("station", in.StationCode).Time("ts", in.Timestamp).Msg("duplicate sample skipped")
			metrics.IngestDedupTotal.WithLabelValues("hit").Inc()
			return nil
		} else {
			metrics.IngestDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	if _, err := s.stations.FindByCode(ctx, in.StationCode); err != nil {
		metrics.IngestErrorsTotal.WithLabelValues("unknown_station").Inc()
		return fmt.Errorf("record reading: %w", err)
	}

	if !in.Timestamp.IsZero() {
		if markErr := s.dedup.Mark(ctx, in.StationCode, in.Timestamp); markErr != nil {
			s.log.Warn().Err(markErr).Str("station", in.StationCode).Msg("failed to set dedup key")
		}
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	reading := &domain.Reading{
		ID:          uuid.NewString(),
		StationCode: in.StationCode,
		Voltage:     in.Voltage,
		Current:     in.Current,
		Power:       in.Power,
		CreatedAt:   ts,
	}

	if err := s.readings.Insert(ctx, reading); err != nil {
		metrics.IngestErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record reading: %w", err)
	}

	status := string(reading.Status())
	metrics.ReadingsIngestedTotal.WithLabelValues(in.StationCode, status).Inc()
	metrics.IngestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("station", in.StationCode).
		Float64("power_kw", in.Power).
		Str("status", status).
		Msg("reading recorded")

	return nil
}

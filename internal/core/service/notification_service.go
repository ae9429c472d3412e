package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

type notificationService struct {
	notifications ports.NotificationRepository
	stations      ports.StationRepository
	readings      ports.ReadingRepository
	log           zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation. The
// station and reading repositories feed the dashboard summary counts.
func NewNotificationService(
	notifications ports.NotificationRepository,
	stations ports.StationRepository,
	readings ports.ReadingRepository,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{
		notifications: notifications,
		stations:      stations,
		readings:      readings,
		log:           log,
	}
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.notifications.ListForUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Str("notification_id", id).Msg("notification marked read")
	return nil
}

// Summary aggregates the counts shown on the dashboard cards. Genset status
// counts are derived from each station's most recent reading.
func (s *notificationService) Summary(ctx context.Context) (*domain.Summary, error) {
	total, active, err := s.stations.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: stations: %w", err)
	}

	latest, err := s.readings.LatestPerStation(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: readings: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: notifications: %w", err)
	}

	sum := &domain.Summary{
		StationsTotal:  total,
		StationsActive: active,
		UnreadTotal:    unread,
	}
	for _, r := range latest {
		switch r.Status() {
		case domain.StatusOnline:
			sum.GensetsOnline++
		case domain.StatusWarning:
			sum.GensetsWarning++
		case domain.StatusOffline:
			sum.GensetsOffline++
		}
	}

	return sum, nil
}

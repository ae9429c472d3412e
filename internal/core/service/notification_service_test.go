package service

import (
	"context"
	"testing"
	"time"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/pkg/logger"
)

type stubNotificationRepo struct {
	items []domain.Notification
}

func (r *stubNotificationRepo) ListForUser(_ context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) CountUnread(_ context.Context) (int64, error) {
	var n int64
	for _, item := range r.items {
		if !item.Read {
			n++
		}
	}
	return n, nil
}

func TestNotificationService_MarkRead(t *testing.T) {
	repo := &stubNotificationRepo{items: []domain.Notification{
		{ID: "n1", UserID: "u1", Read: false},
		{ID: "n2", UserID: "u1", Read: false},
	}}
	logger.Reset()
	log := logger.Init(logger.Options{Level: "error"})
	svc := NewNotificationService(repo, &stubStationRepo{}, &stubReadingRepo{}, log)

	before, _ := repo.CountUnread(context.Background())
	if err := svc.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	after, _ := repo.CountUnread(context.Background())

	if after != before-1 {
		t.Fatalf("expected unread count to drop by 1, got %d -> %d", before, after)
	}

	items, _ := svc.ListForUser(context.Background(), "u1")
	for _, item := range items {
		if item.ID == "n1" && !item.Read {
			t.Fatalf("expected n1 to be read after mutation")
		}
	}
}

func TestNotificationService_ListForUser_RequiresUser(t *testing.T) {
	logger.Reset()
	log := logger.Init(logger.Options{Level: "error"})
	svc := NewNotificationService(&stubNotificationRepo{}, &stubStationRepo{}, &stubReadingRepo{}, log)

	if _, err := svc.ListForUser(context.Background(), ""); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestNotificationService_Summary(t *testing.T) {
	now := time.Now().UTC()
	stations := &stubStationRepo{stations: []domain.Station{
		{Code: "GS-01", Active: true},
		{Code: "GS-02", Active: true},
		{Code: "GS-03", Active: false},
	}}
	readings := &stubReadingRepo{readings: []domain.Reading{
		{StationCode: "GS-01", Power: 0, CreatedAt: now},
		{StationCode: "GS-02", Power: 5, CreatedAt: now},
		{StationCode: "GS-03", Power: 15, CreatedAt: now},
		// superseded by the newer zero reading above
		{StationCode: "GS-01", Power: 50, CreatedAt: now.Add(-time.Hour)},
	}}
	notifications := &stubNotificationRepo{items: []domain.Notification{
		{ID: "n1", Read: false},
		{ID: "n2", Read: true},
	}}

	logger.Reset()
	log := logger.Init(logger.Options{Level: "error"})
	svc := NewNotificationService(notifications, stations, readings, log)

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	if sum.StationsTotal != 3 || sum.StationsActive != 2 {
		t.Fatalf("unexpected station counts: %+v", sum)
	}
	if sum.GensetsOffline != 1 || sum.GensetsWarning != 1 || sum.GensetsOnline != 1 {
		t.Fatalf("unexpected genset counts: %+v", sum)
	}
	if sum.UnreadTotal != 1 {
		t.Fatalf("expected 1 unread, got %d", sum.UnreadTotal)
	}
}

package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

func boolPtr(b bool) *bool { return &b }

func sampleStations() []domain.Station {
	return []domain.Station{
		{ID: "s1", Name: "North Plant", Code: "GS-01", Active: true},
		{ID: "s2", Name: "South Depot", Code: "GS-02", Active: false},
		{ID: "s3", Name: "Harbor North", Code: "GS-03", Active: true},
	}
}

func TestFilterStations_CaseInsensitiveSearch(t *testing.T) {
	got := FilterStations(sampleStations(), "NORTH", nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "s1" || got[1].ID != "s3" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestFilterStations_SearchMatchesCode(t *testing.T) {
	got := FilterStations(sampleStations(), "gs-02", nil)
	if len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("expected code match for s2, got %+v", got)
	}
}

func TestFilterStations_SearchAndStatusCombine(t *testing.T) {
	got := FilterStations(sampleStations(), "north", boolPtr(true))
	if len(got) != 2 {
		t.Fatalf("expected 2 active north stations, got %+v", got)
	}

	got = FilterStations(sampleStations(), "south", boolPtr(true))
	if len(got) != 0 {
		t.Fatalf("expected no active south stations, got %+v", got)
	}
}

func TestFilterStations_Idempotent(t *testing.T) {
	once := FilterStations(sampleStations(), "north", boolPtr(true))
	twice := FilterStations(once, "north", boolPtr(true))
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("filter not idempotent at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestStationDirectory_LoadKeepsPriorDataOnError(t *testing.T) {
	var fail bool
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeEnvelope(w, http.StatusInternalServerError, nil, "boom")
			return
		}
		writeEnvelope(w, http.StatusOK, sampleStations(), "")
	}))

	rec := &noticeRecorder{}
	dir := NewStationDirectory(api, rec.fn())
	ctx := context.Background()

	dir.Load(ctx)
	if got := len(dir.Rows()); got != 3 {
		t.Fatalf("expected 3 stations after load, got %d", got)
	}

	fail = true
	dir.Load(ctx)
	if got := len(dir.Rows()); got != 3 {
		t.Fatalf("expected prior data kept after failed load, got %d", got)
	}
	if rec.count(LevelError) != 1 {
		t.Fatalf("expected one error notice, got %d", rec.count(LevelError))
	}
}

func TestStationDirectory_SearchResetsPage(t *testing.T) {
	stations := make([]domain.Station, 0, 25)
	for i := 0; i < 25; i++ {
		stations = append(stations, domain.Station{ID: string(rune('a' + i)), Name: "Station", Code: "GS"})
	}
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, stations, "")
	}))

	dir := NewStationDirectory(api, nil)
	dir.Load(context.Background())

	dir.SetPage(3)
	if _, page, total := dir.Page(); page != 3 || total != 3 {
		t.Fatalf("expected page 3 of 3, got %d of %d", page, total)
	}

	dir.SetSearch("station")
	if _, page, _ := dir.Page(); page != 1 {
		t.Fatalf("expected search to reset to page 1, got %d", page)
	}
}

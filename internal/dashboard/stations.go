package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/pkg/client"
)

// StationDirectory is the station list view: one fetch, then free-text search
// and a status filter computed locally.
type StationDirectory struct {
	mu       sync.Mutex
	api      *client.Client
	notify   NoticeFunc
	stations []domain.Station
	search   string
	status   *bool
	page     int
	loaded   bool
}

func NewStationDirectory(api *client.Client, notify NoticeFunc) *StationDirectory {
	return &StationDirectory{api: api, notify: notify, page: 1}
}

// Load fetches the station list. A failed fetch posts a notice and keeps any
// previously loaded data visible.
func (d *StationDirectory) Load(ctx context.Context) {
	stations, err := d.api.ListStations(ctx)
	if err != nil {
		d.notify.post(LevelError, "Error fetching station data", err.Error())
		return
	}

	d.mu.Lock()
	d.stations = stations
	d.loaded = true
	d.mu.Unlock()
}

// SetSearch updates the free-text filter and resets to the first page.
func (d *StationDirectory) SetSearch(text string) {
	d.mu.Lock()
	d.search = text
	d.page = 1
	d.mu.Unlock()
}

// SetStatusFilter filters by active flag; nil clears the filter.
func (d *StationDirectory) SetStatusFilter(active *bool) {
	d.mu.Lock()
	d.status = active
	d.page = 1
	d.mu.Unlock()
}

// SetPage selects the 1-based table page.
func (d *StationDirectory) SetPage(page int) {
	d.mu.Lock()
	d.page = clampPage(page, len(d.filteredLocked()), DefaultPageSize)
	d.mu.Unlock()
}

// Rows returns the filtered station list.
func (d *StationDirectory) Rows() []domain.Station {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filteredLocked()
}

// Page returns the current table page of the filtered list along with the
// page number and total page count.
func (d *StationDirectory) Page() ([]domain.Station, int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := d.filteredLocked()
	page := clampPage(d.page, len(filtered), DefaultPageSize)
	return Paginate(filtered, page, DefaultPageSize), page, PageCount(len(filtered), DefaultPageSize)
}

func (d *StationDirectory) filteredLocked() []domain.Station {
	return FilterStations(d.stations, d.search, d.status)
}

// FilterStations keeps stations whose name or code contains the search text
// case-insensitively AND whose active flag equals the status filter when one
// is set.
func FilterStations(stations []domain.Station, search string, status *bool) []domain.Station {
	needle := strings.ToLower(search)
	out := make([]domain.Station, 0, len(stations))
	for _, s := range stations {
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Code), needle) {
			continue
		}
		if status != nil && s.Active != *status {
			continue
		}
		out = append(out, s)
	}
	return out
}

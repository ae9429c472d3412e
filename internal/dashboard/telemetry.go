package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/pkg/client"
)

// RefreshInterval is how often the telemetry table re-fetches while running.
const RefreshInterval = 30 * time.Second

// Row is one line of the monitoring table. Status is recomputed from power so
// the displayed classification never depends on anything but the reading.
type Row struct {
	StationCode string
	Voltage     float64
	Current     float64
	Power       float64
	Status      domain.GensetStatus
	CreatedAt   time.Time
}

// TelemetryMonitor is the live telemetry table: an immediate fetch, a
// recurring fetch every RefreshInterval, a manual refresh, and a server-side
// station filter. Rows keep the server's order.
//
// Overlapping fetches race (timer vs manual refresh); every fetch carries a
// monotonically increasing sequence number and only the highest-numbered
// response is applied, so a slow stale response can never overwrite a newer
// one.
type TelemetryMonitor struct {
	mu          sync.Mutex
	api         *client.Client
	notify      NoticeFunc
	interval    time.Duration
	stations    []domain.Station
	readings    []client.Reading
	stationCode string
	page        int
	loaded      bool
	seq         uint64
	applied     uint64
}

func NewTelemetryMonitor(api *client.Client, notify NoticeFunc) *TelemetryMonitor {
	return &TelemetryMonitor{
		api:      api,
		notify:   notify,
		interval: RefreshInterval,
		page:     1,
	}
}

// Run fetches immediately and then on every tick until ctx is cancelled.
func (m *TelemetryMonitor) Run(ctx context.Context) {
	m.LoadStations(ctx)
	m.Refresh(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh(ctx)
		}
	}
}

// LoadStations fetches the station list for the filter choices, independently
// of the reading list.
func (m *TelemetryMonitor) LoadStations(ctx context.Context) {
	stations, err := m.api.ListStations(ctx)
	if err != nil {
		m.notify.post(LevelError, "Error fetching stations", err.Error())
		return
	}

	m.mu.Lock()
	m.stations = stations
	m.mu.Unlock()
}

// Refresh fetches readings with the current station filter and applies the
// response unless a newer one has already landed. A failed fetch posts a
// notice and leaves previously loaded rows visible.
func (m *TelemetryMonitor) Refresh(ctx context.Context) {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	code := m.stationCode
	m.mu.Unlock()

	readings, err := m.api.ListReadings(ctx, code)
	if err != nil {
		m.notify.post(LevelError, "Error fetching data", "There was an error fetching the generator station data.")
		return
	}

	m.mu.Lock()
	if seq > m.applied {
		m.readings = readings
		m.applied = seq
		m.loaded = true
	}
	m.mu.Unlock()
}

// SetStationFilter scopes the table to one station code ("" means all),
// resets to the first page, and re-fetches immediately.
func (m *TelemetryMonitor) SetStationFilter(ctx context.Context, code string) {
	m.mu.Lock()
	m.stationCode = code
	m.page = 1
	m.mu.Unlock()

	m.Refresh(ctx)
}

// StationFilter returns the active station code, "" when showing all.
func (m *TelemetryMonitor) StationFilter() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stationCode
}

// StationCodes returns the filter dropdown choices.
func (m *TelemetryMonitor) StationCodes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	codes := make([]string, 0, len(m.stations))
	for _, s := range m.stations {
		codes = append(codes, s.Code)
	}
	return codes
}

// SetPage selects the 1-based table page.
func (m *TelemetryMonitor) SetPage(page int) {
	m.mu.Lock()
	m.page = clampPage(page, len(m.readings), DefaultPageSize)
	m.mu.Unlock()
}

// Loaded reports whether at least one fetch has succeeded.
func (m *TelemetryMonitor) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// Rows returns every fetched reading as a table row, in server order.
func (m *TelemetryMonitor) Rows() []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	return toRows(m.readings)
}

// Page returns the current table page along with the page number and total
// page count.
func (m *TelemetryMonitor) Page() ([]Row, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	page := clampPage(m.page, len(m.readings), DefaultPageSize)
	return toRows(Paginate(m.readings, page, DefaultPageSize)), page, PageCount(len(m.readings), DefaultPageSize)
}

func toRows(readings []client.Reading) []Row {
	rows := make([]Row, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, Row{
			StationCode: r.StationCode,
			Voltage:     r.Voltage,
			Current:     r.Current,
			Power:       r.Power,
			Status:      domain.DeriveStatus(r.Power),
			CreatedAt:   r.CreatedAt,
		})
	}
	return rows
}

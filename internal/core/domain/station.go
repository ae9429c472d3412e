package domain

import (
	"errors"
	"time"
)

var ErrStationNotFound = errors.New("station not found")

// Station is a generator site. Code is the unique short identifier used by
// telemetry readings to reference their station.
type Station struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Active    bool      `json:"statusData"`
	CreatedAt time.Time `json:"createdAt"`
}

package domain

import (
	"errors"
	"time"
)

var ErrDuplicateReading = errors.New("reading already recorded")

// GensetStatus is the operational state derived from a reading's power output.
type GensetStatus string

const (
	StatusOnline  GensetStatus = "Online"
	StatusWarning GensetStatus = "Warning"
	StatusOffline GensetStatus = "Offline"
)

// warningThresholdKW is the power output below which a running genset is
// considered degraded.
const warningThresholdKW = 10

// Reading is a single telemetry sample reported by a genset. Readings are
// immutable once recorded.
type Reading struct {
	ID          string    `json:"id"`
	StationCode string    `json:"gensetId"`
	Voltage     float64   `json:"voltage"`
	Current     float64   `json:"currentA"`
	Power       float64   `json:"power"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DeriveStatus classifies a power reading in kilowatts. Zero power means the
// genset is off; anything under the warning threshold means it is running
// degraded.
func DeriveStatus(powerKW float64) GensetStatus {
	switch {
	case powerKW == 0:
		return StatusOffline
	case powerKW < warningThresholdKW:
		return StatusWarning
	default:
		return StatusOnline
	}
}

// Status is a convenience wrapper over DeriveStatus.
func (r Reading) Status() GensetStatus {
	return DeriveStatus(r.Power)
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

// ReadingDispatcher is the interface the handler uses to enqueue pushed samples.
type ReadingDispatcher interface {
	Enqueue(in ports.ReadingInput)
}

// TelemetryHandler serves the monitoring table and ingests gateway pushes.
type TelemetryHandler struct {
	telemetry  ports.TelemetryService
	dispatcher ReadingDispatcher
}

func NewTelemetryHandler(telemetry ports.TelemetryService, dispatcher ReadingDispatcher) *TelemetryHandler {
	return &TelemetryHandler{telemetry: telemetry, dispatcher: dispatcher}
}

type readingResponse struct {
	ID          string    `json:"id"`
	StationCode string    `json:"gensetId"`
	Voltage     float64   `json:"voltage"`
	Current     float64   `json:"currentA"`
	Power       float64   `json:"power"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type pushReadingRequest struct {
	StationCode string    `json:"gensetId" validate:"required"`
	Voltage     float64   `json:"voltage"  validate:"gte=0"`
	Current     float64   `json:"currentA" validate:"gte=0"`
	Power       float64   `json:"power"    validate:"gte=0"`
	Timestamp   time.Time `json:"timestamp"`
}

// List handles GET /genset-monitoring?stationCode= — readings newest first,
// optionally scoped to one station. The derived status travels with each row
// so consumers never re-implement the thresholds.
//
// @Summary      List telemetry readings
// @Tags         telemetry
// @Produce      json
// @Param        stationCode  query     string  false  "Filter by station code"
// @Success      200          {object}  envelope
// @Router       /genset-monitoring [get]
func (h *TelemetryHandler) List(c echo.Context) error {
	readings, err := h.telemetry.List(c.Request().Context(), c.QueryParam("stationCode"))
	if err != nil {
		return err
	}

	rows := make([]readingResponse, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, readingResponse{
			ID:          r.ID,
			StationCode: r.StationCode,
			Voltage:     r.Voltage,
			Current:     r.Current,
			Power:       r.Power,
			Status:      string(r.Status()),
			CreatedAt:   r.CreatedAt,
		})
	}
	return respond(c, http.StatusOK, rows)
}

// Push handles POST /genset-monitoring — enqueues a pushed sample, returns 202.
//
// @Summary      Ingest a telemetry reading
// @Tags         telemetry
// @Accept       json
// @Produce      json
// @Param        body  body      pushReadingRequest  true  "Telemetry sample"
// @Success      202   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /genset-monitoring [post]
func (h *TelemetryHandler) Push(c echo.Context) error {
	var req pushReadingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(ports.ReadingInput{
		StationCode: req.StationCode,
		Voltage:     req.Voltage,
		Current:     req.Current,
		Power:       req.Power,
		Timestamp:   req.Timestamp,
	})
	return respondMessage(c, http.StatusAccepted, nil, "reading accepted")
}

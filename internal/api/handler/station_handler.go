package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

type StationHandler struct {
	stations ports.StationService
}

func NewStationHandler(stations ports.StationService) *StationHandler {
	return &StationHandler{stations: stations}
}

// List handles GET /stations.
//
// @Summary      List stations
// @Tags         stations
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /stations [get]
func (h *StationHandler) List(c echo.Context) error {
	stations, err := h.stations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stations)
}

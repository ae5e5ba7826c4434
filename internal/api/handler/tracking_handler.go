package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

// TrackingHandler serves the container and air-cargo lookup endpoints.
type TrackingHandler struct {
	service ports.TrackingService
	log     zerolog.Logger
}

func NewTrackingHandler(service ports.TrackingService, log zerolog.Logger) *TrackingHandler {
	return &TrackingHandler{service: service, log: log}
}

// TrackContainer handles GET /v1/track/container?tracking_number=...
func (h *TrackingHandler) TrackContainer(c echo.Context) error {
	return h.track(c, domain.KindContainer)
}

// TrackAir handles GET /v1/track/air?tracking_number=...
func (h *TrackingHandler) TrackAir(c echo.Context) error {
	return h.track(c, domain.KindAirCargo)
}

func (h *TrackingHandler) track(c echo.Context, kind domain.ShipmentKind) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed query")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Track(c.Request().Context(), ports.TrackInput{
		Kind:           kind,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return err
	}

	// Both outcomes travel as HTTP 200; the envelope code tells them apart.
	return c.JSON(http.StatusOK, trackResponse{
		Code:    result.Code,
		Data:    result.Records,
		Source:  result.Source,
		Message: result.Message,
	})
}

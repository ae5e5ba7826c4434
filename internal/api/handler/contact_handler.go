package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

// ContactEnqueuer hands a validated submission to the relay worker pool.
type ContactEnqueuer interface {
	Enqueue(input ports.ContactInput) bool
}

// ContactHandler serves the contact-form endpoint. Submissions are queued
// and relayed asynchronously; the client gets an acknowledgement as soon as
// the message is accepted.
type ContactHandler struct {
	queue ContactEnqueuer
	log   zerolog.Logger
}

func NewContactHandler(queue ContactEnqueuer, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{queue: queue, log: log}
}

// Submit handles POST /v1/contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accepted := h.queue.Enqueue(ports.ContactInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		ReceivedAt: time.Now().UTC(),
	})
	if !accepted {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "contact queue full, try again later")
	}

	return c.JSON(http.StatusAccepted, contactResponse{Status: "accepted"})
}

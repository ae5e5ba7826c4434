package handler

import "github.com/tigrisline/tracking-gateway/internal/core/domain"

// trackRequest binds the query parameters of a tracking lookup.
type trackRequest struct {
	TrackingNumber string `query:"tracking_number" validate:"required"`
}

// trackResponse is the payload envelope shared by both tracking endpoints.
// Code is 200 when Data holds a record and 404 when every source came up
// empty; the HTTP status stays 200 in both cases.
type trackResponse struct {
	Code    int                     `json:"code"`
	Data    []domain.TrackingRecord `json:"data"`
	Source  string                  `json:"source,omitempty"`
	Message string                  `json:"message,omitempty"`
}

// Package api holds the shared response envelopes referenced from
// swagger annotations across the handlers.
package api

type ErrorResponse struct {
	Error string `json:"error" example:"insufficient credits"`
}

type MessageResponse struct {
	Message string `json:"message" example:"credits added"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

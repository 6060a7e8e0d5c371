package handlers

import "pongapi/services"

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	svc *services.Tournaments
}

// New creates a Handler around the tournaments service.
func New(svc *services.Tournaments) *Handler {
	return &Handler{svc: svc}
}

package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the index page and one GET endpoint per operation.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Index)

	for _, op := range Operations {
		r.Get(op.Path(), h.Operation(op))
	}
}

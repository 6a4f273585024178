package wire

import (
	"estatelink/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, h *adaptor.UserHandler) {
	r.Get("/api/users", h.List)
	r.Put("/api/users/{id}", h.Update)
	r.Delete("/api/users/{id}", h.Delete)
	r.Patch("/api/users/{id}/status", h.SetStatus)
}

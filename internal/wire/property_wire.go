package wire

import (
	"estatelink/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProperty(r chi.Router, h *adaptor.PropertyHandler) {
	r.Post("/api/properties", h.Create)
	r.Get("/api/properties", h.List)
	r.Get("/api/properties/{id}", h.Get)
	r.Put("/api/properties/{id}", h.Update)
	r.Delete("/api/properties/{id}", h.Delete)
	r.Patch("/api/properties/{id}/forward-to-council", h.ForwardToCouncil)
	r.Patch("/api/properties/{id}/payment", h.UpdatePayment)
}

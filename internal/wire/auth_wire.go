package wire

import (
	"estatelink/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, h *adaptor.AuthHandler) {
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	r.Get("/api/auth/profile", h.Profile)
}

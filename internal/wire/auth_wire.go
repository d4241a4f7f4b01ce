package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public authentication routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// /api/login and /api/token issue the same token pair
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/token", authHandler.Login)
	r.Post("/api/token/refresh", authHandler.Refresh)
	r.Post("/api/register", authHandler.Register)
}

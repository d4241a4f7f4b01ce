package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the user management routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, config *utils.Config, log *zap.Logger) {
	wireResource(r, userHandler, "users", "user", config, log)
}

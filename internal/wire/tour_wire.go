package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTour configures the tour management routes
func wireTour(r chi.Router, tourHandler *adaptor.TourHandler, config *utils.Config, log *zap.Logger) {
	wireResource(r, tourHandler, "tours", "tour", config, log)
}

package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireDashboard configures the dashboard stats route
func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler, config *utils.Config, log *zap.Logger) {
	r.With(middleware.AuthJWT(config.JWT, log)).Get("/api/dashboard-stats", dashboardHandler.Stats)
}

package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking configures the booking routes. Role checks happen in the
// service because parents and staff share the same endpoints.
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	auth := middleware.AuthJWT(config.JWT, log)

	r.With(auth).Route("/api/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.List)
		r.Post("/", bookingHandler.Create)
	})

	r.With(auth).Route("/api/booking/{id}", func(r chi.Router) {
		r.Get("/", bookingHandler.Get)
		r.Patch("/", bookingHandler.Patch)
	})
}

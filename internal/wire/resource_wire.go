package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireResource mounts the uniform CRUD routes for one entity:
// collection routes on the plural path, item routes on the singular
// path. Reads and create need a valid token; writes on existing items
// are staff only.
func wireResource[Req any, Patch any, Resp any](
	r chi.Router,
	handler *adaptor.ResourceHandler[Req, Patch, Resp],
	plural string,
	singular string,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(config.JWT, log)
	staff := middleware.StaffOnly(log)

	r.With(auth).Route("/api/"+plural, func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
	})

	r.With(auth).Route("/api/"+singular+"/{id}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.With(staff).Put("/", handler.Replace)
		r.With(staff).Patch("/", handler.Patch)
		r.With(staff).Delete("/", handler.Delete)
	})
}

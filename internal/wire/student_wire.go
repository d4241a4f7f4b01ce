package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireStudent configures the student management routes
func wireStudent(r chi.Router, studentHandler *adaptor.StudentHandler, config *utils.Config, log *zap.Logger) {
	wireResource(r, studentHandler, "students", "student", config, log)
}

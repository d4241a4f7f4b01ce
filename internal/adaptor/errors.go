package adaptor

import (
	"net/http"

	"tour-booking/internal/domain"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps typed service errors onto HTTP responses.
// Anything unrecognized is treated as internal and never leaks its
// message to the client.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case domain.IsNotFound(err):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case domain.IsValidation(err):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), domain.ValidationFields(err))

	case domain.IsConflict(err):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case domain.IsAuthentication(err):
		log.Warn(operation+" failed - authentication",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, err.Error())

	case domain.IsPermission(err):
		log.Warn(operation+" failed - permission",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wirePayment configures the payment management routes
func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler, config *utils.Config, log *zap.Logger) {
	wireResource(r, paymentHandler, "payments", "payment", config, log)
}

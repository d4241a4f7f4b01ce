package adaptor

import (
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"

	"go.uber.org/zap"
)

type UserHandler = ResourceHandler[request.UserRequest, request.UserPatch, response.UserResponse]

type StudentHandler = ResourceHandler[request.StudentRequest, request.StudentPatch, response.StudentResponse]

type TourHandler = ResourceHandler[request.TourRequest, request.TourPatch, response.TourResponse]

type PaymentHandler = ResourceHandler[request.PaymentRequest, request.PaymentPatch, response.PaymentResponse]

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Student   *StudentHandler
	Tour      *TourHandler
	Payment   *PaymentHandler
	Booking   *BookingHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewResourceHandler(service.User, "user", log),
		Student:   NewResourceHandler(service.Student, "student", log),
		Tour:      NewResourceHandler(service.Tour, "tour", log),
		Payment:   NewResourceHandler(service.Payment, "payment", log),
		Booking:   NewBookingHandler(service.Booking, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}

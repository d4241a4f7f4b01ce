package usecase

import (
	"context"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"

	"github.com/google/uuid"
)

// ResourceService is the uniform CRUD capability behind the generic
// resource endpoints. Each entity provides a concrete implementation
// that owns its schema validation and storage access; the HTTP layer
// stays identical across all of them.
//
// Replace carries full-replace semantics (PUT), Patch merges only the
// fields present in the payload (PATCH).
type ResourceService[Req any, Patch any, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id uuid.UUID) (Resp, error)
	Create(ctx context.Context, req *Req) (Resp, error)
	Replace(ctx context.Context, id uuid.UUID, req *Req) (Resp, error)
	Patch(ctx context.Context, id uuid.UUID, patch *Patch) (Resp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserService = ResourceService[request.UserRequest, request.UserPatch, response.UserResponse]

type StudentService = ResourceService[request.StudentRequest, request.StudentPatch, response.StudentResponse]

type TourService = ResourceService[request.TourRequest, request.TourPatch, response.TourResponse]

type PaymentService = ResourceService[request.PaymentRequest, request.PaymentPatch, response.PaymentResponse]

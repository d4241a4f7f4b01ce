package request

// BookingRequest has no parent or status field: parent is always taken
// from the authenticated caller and status starts at its default.
type BookingRequest struct {
	StudentID   string `json:"student" validate:"required,uuid4"`
	TourID      string `json:"tour" validate:"required,uuid4"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Amount      int    `json:"amount" validate:"min=0"`
}

// BookingPatch accepts every staff-writable field. Which of them are
// actually applied depends on the caller's role.
type BookingPatch struct {
	StudentID   *string `json:"student,omitempty" validate:"omitempty,uuid4"`
	TourID      *string `json:"tour,omitempty" validate:"omitempty,uuid4"`
	BookingDate *string `json:"booking_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status,omitempty"`
	Amount      *int    `json:"amount,omitempty" validate:"omitempty,min=0"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodMobile PaymentMethod = "mobile"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Payment struct {
	Base
	Amount      int           `db:"amount"`
	Method      PaymentMethod `db:"method"`
	Status      PaymentStatus `db:"status"`
	PaymentDate time.Time     `db:"payment_date"`
	StudentID   uuid.UUID     `db:"student_id"`
	BookingID   *uuid.UUID    `db:"booking_id"`
}

// PaymentDetail carries the display fields resolved through the
// student and, when the payment is tied to a booking, the booking's parent.
type PaymentDetail struct {
	Payment
	StudentName string  `db:"student_name"`
	ParentName  *string `db:"parent_name"`
}

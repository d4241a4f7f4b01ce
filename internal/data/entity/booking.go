package entity

import (
	"time"

	"github.com/google/uuid"
)

const BookingStatusPending = "pending"

type Booking struct {
	Base
	ParentID    uuid.UUID `db:"parent_id"`
	StudentID   uuid.UUID `db:"student_id"`
	TourID      uuid.UUID `db:"tour_id"`
	BookingDate time.Time `db:"booking_date"`
	Status      string    `db:"status"`
	Amount      int       `db:"amount"`
}

// BookingDetail is the read-side shape with display names joined in.
type BookingDetail struct {
	Booking
	StudentName string `db:"student_name"`
	TourTitle   string `db:"tour_title"`
	ParentName  string `db:"parent_name"`
}

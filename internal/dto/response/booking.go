package response

import (
	"tour-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string `json:"id"`
	ParentID    string `json:"parent"`
	StudentID   string `json:"student"`
	TourID      string `json:"tour"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
	Amount      int    `json:"amount"`
	StudentName string `json:"student_name"`
	TourTitle   string `json:"tour_title"`
	ParentName  string `json:"parent_name"`
}

func BookingToResponse(b *entity.BookingDetail) BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		ParentID:    b.ParentID.String(),
		StudentID:   b.StudentID.String(),
		TourID:      b.TourID.String(),
		BookingDate: b.BookingDate.Format("2006-01-02"),
		Status:      b.Status,
		Amount:      b.Amount,
		StudentName: b.StudentName,
		TourTitle:   b.TourTitle,
		ParentName:  b.ParentName,
	}
}

package response

import (
	"tour-booking/internal/data/entity"
)

// PaymentResponse keeps the camelCase display fields the frontend
// already consumes for studentName/parentName.
type PaymentResponse struct {
	ID          string               `json:"id"`
	Amount      int                  `json:"amount"`
	Method      entity.PaymentMethod `json:"method"`
	Status      entity.PaymentStatus `json:"status"`
	PaymentDate string               `json:"payment_date"`
	StudentID   string               `json:"student"`
	BookingID   *string              `json:"booking"`
	StudentName string               `json:"studentName"`
	ParentName  *string              `json:"parentName"`
}

func PaymentToResponse(p *entity.PaymentDetail) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID.String(),
		Amount:      p.Amount,
		Method:      p.Method,
		Status:      p.Status,
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		StudentID:   p.StudentID.String(),
		StudentName: p.StudentName,
		ParentName:  p.ParentName,
	}

	if p.BookingID != nil {
		id := p.BookingID.String()
		resp.BookingID = &id
	}

	return resp
}

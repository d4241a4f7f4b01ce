package response

import (
	"tour-booking/internal/data/entity"
)

type TourResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Destination string `json:"destination"`
	Amount      int    `json:"amount"`
}

func TourToResponse(tour *entity.Tour) TourResponse {
	return TourResponse{
		ID:          tour.ID.String(),
		Title:       tour.Title,
		Description: tour.Description,
		Date:        tour.Date.Format("2006-01-02"),
		Destination: tour.Destination,
		Amount:      tour.Amount,
	}
}

package request

type TourRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Destination string `json:"destination" validate:"required"`
	Amount      int    `json:"amount" validate:"min=0"`
}

type TourPatch struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Destination *string `json:"destination,omitempty"`
	Amount      *int    `json:"amount,omitempty" validate:"omitempty,min=0"`
}

package request

import "encoding/json"

// NullableID distinguishes an absent field from an explicit null so a
// partial update can clear an optional link.
type NullableID struct {
	Set   bool
	Value *string
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type PaymentRequest struct {
	Amount      int     `json:"amount" validate:"required,min=1"`
	Method      string  `json:"method" validate:"required,oneof=cash card bank mobile"`
	Status      string  `json:"status" validate:"required,oneof=pending paid failed"`
	PaymentDate string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	StudentID   string  `json:"student" validate:"required,uuid4"`
	BookingID   *string `json:"booking,omitempty" validate:"omitempty,uuid4"`
}

type PaymentPatch struct {
	Amount      *int    `json:"amount,omitempty" validate:"omitempty,min=1"`
	Method      *string `json:"method,omitempty" validate:"omitempty,oneof=cash card bank mobile"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending paid failed"`
	PaymentDate *string `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StudentID   *string `json:"student,omitempty" validate:"omitempty,uuid4"`
	// id validity is checked when the link is resolved
	BookingID NullableID `json:"booking"`
}

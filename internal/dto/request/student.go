package request

type StudentRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Age    int    `json:"age" validate:"required,min=1"`
	Class  string `json:"class" validate:"required,max=10"`
	Gender string `json:"gender" validate:"required,oneof=M F"`
}

type StudentPatch struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,min=1"`
	Class  *string `json:"class,omitempty" validate:"omitempty,max=10"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
}

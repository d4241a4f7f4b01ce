package request

type UserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=150"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"first_name" validate:"required,max=30"`
	LastName  string  `json:"last_name" validate:"required,max=30"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Role      string  `json:"role" validate:"required,oneof=staff parent"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type UserPatch struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=30"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=staff parent"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

package entity

type UserRole string

const (
	RoleStaff  UserRole = "staff"
	RoleParent UserRole = "parent"
)

// ValidRole reports whether role is one of the two enumerated roles.
func ValidRole(role UserRole) bool {
	return role == RoleStaff || role == RoleParent
}

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	IsStaff      bool     `db:"is_staff"`
}

// DisplayName is what payment views show for the paying parent.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

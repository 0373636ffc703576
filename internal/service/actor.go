package service

// Actor identifies the caller of a booking operation. Authentication itself
// happens upstream; handlers pass the resolved identity through.
type Actor struct {
	UserID uint
	Role   string
	Name   string
	Email  string
}

const (
	RoleGuest = "guest"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff || a.Role == RoleAdmin
}

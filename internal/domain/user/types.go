package user

type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// RoleOrDefault maps an absent role column to the patient role. A user record
// synced from the sign-in flow has no role until an administrator grants one.
func RoleOrDefault(s string) Role {
	if s == "" {
		return RolePatient
	}
	role := Role(s)
	if !role.IsValid() {
		return RolePatient
	}
	return role
}

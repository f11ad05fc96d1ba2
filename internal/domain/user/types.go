package user

type Role string

const (
	RoleStudent    Role = "student"
	RoleAdvertiser Role = "advertiser"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAdvertiser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff: moderators and admins share every moderation capability.
func (r Role) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin
}

// Staff roles are provisioned, never self-registered.
func (r Role) IsSelfRegistrable() bool {
	return r == RoleStudent || r == RoleAdvertiser
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

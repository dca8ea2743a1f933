package user

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"   // Full access, can manage users and any invitation
	RoleManager Role = "MANAGER" // Can manage schedules and own invitations
	RoleMember  Role = "MEMBER"  // Regular instructor account
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleMember),
}

// roleLevels orders the roles for hierarchy comparisons. All role checks in
// the codebase go through AtLeast so the ordering is declared exactly once.
var roleLevels = map[Role]int{
	RoleAdmin:   3,
	RoleManager: 2,
	RoleMember:  1,
}

// Level returns the numeric rank of the role, 0 for unknown roles.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether r ranks equal to or above other.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level() && r.Level() > 0
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// User represents an account created through invitation-gated LINE signup.
type User struct {
	ID          string
	LineUserID  string
	DisplayName string
	PictureURL  *string
	Role        Role
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanManageInvitations checks if the user may create or list invitations.
func (u *User) CanManageInvitations() bool {
	return u.IsActive && u.Role.AtLeast(RoleManager)
}

// IsAdmin checks if the user has full administrative access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"      // Full access including role management
	RoleHRManager Role = "hr_manager" // Manages every HR record
	RoleEmployee  Role = "employee"   // Read-only console access
)

// Roles lists every assignable role.
var Roles = []Role{RoleAdmin, RoleHRManager, RoleEmployee}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FirstName       string
	LastName        string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsHRStaff checks if user may modify HR records
func (u *User) IsHRStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleHRManager
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

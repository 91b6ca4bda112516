package entity

// User roles and statuses as stored in the user collection.
const (
	RoleNormalUser = "Normal User"
	RoleReporter   = "Reporter"
	RoleAdmin      = "admin"

	StatusActive    = "Active"
	StatusRequested = "Requested"
	StatusApproved  = "Approved"
	StatusDenied    = "Denied"
	StatusBlocked   = "block"
)

// User represents a platform user. Bookmarks and Favorites hold article IDs.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Status    string
	Bookmarks []string
	Favorites []string
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch describes a partial update of a user document.
type UserPatch struct {
	Name   *string
	Role   *string
	Status *string
}

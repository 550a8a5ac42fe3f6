package domain

// RoleAdmin is the only attribute value that grants access to resources owned
// by other users.
const RoleAdmin = "admin"

// AttrRole is the profile attribute carrying the caller's role.
const AttrRole = "role"

// UserToken is the opaque bearer token presented by an end user. It is only
// ever forwarded to services acting on that user's behalf.
type UserToken string

// String masks the token so it can't leak through fmt or slog by accident.
func (t UserToken) String() string {
	if t == "" {
		return ""
	}
	return "[redacted]"
}

// Profile is the identity resolved from a UserToken by the identity provider.
// UserID 0 means the provider answered but the token maps to no identity.
type Profile struct {
	ID         int64             `json:"id"`
	ClientID   string            `json:"client_id"`
	UserID     int64             `json:"user_id"`
	Attributes map[string]string `json:"attributes"`
}

// Role returns the role attribute, or "" when the profile has none.
func (p Profile) Role() string {
	return p.Attributes[AttrRole]
}

// IsAdmin reports whether the profile carries the admin role.
func (p Profile) IsAdmin() bool {
	return p.Role() == RoleAdmin
}

// Caller is an authenticated request principal: the token it presented and
// the profile it resolved to.
type Caller struct {
	Token   UserToken
	Profile Profile
}

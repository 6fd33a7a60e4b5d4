package domain

import (
	"strings"
	"time"
)

// Role decides which dashboard a user lands on and which role-prefixed
// paths they may open.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEmployer   Role = "employer"
	RoleWorker     Role = "worker"
	RoleClient     Role = "client"
	RolePartner    Role = "partner"
	RoleInspector  Role = "inspector"
	RoleUnassigned Role = "unassigned"
)

// Roles lists every role that owns a path prefix, in menu order.
var Roles = []Role{RoleAdmin, RoleEmployer, RoleWorker, RoleClient, RolePartner, RoleInspector}

// SelectableRoles are the roles a user may pick when completing a profile.
var SelectableRoles = []Role{RoleEmployer, RoleWorker, RoleClient, RolePartner, RoleInspector}

// Valid reports whether r is one of the known roles, unassigned included.
func (r Role) Valid() bool {
	if r == RoleUnassigned {
		return true
	}
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Selectable reports whether r may be chosen on the complete-profile step.
func (r Role) Selectable() bool {
	for _, s := range SelectableRoles {
		if r == s {
			return true
		}
	}
	return false
}

// Dashboard returns the landing path for the role. Unassigned and unknown
// roles are sent to finish their profile first.
func (r Role) Dashboard() string {
	if r == RoleUnassigned || !r.Valid() {
		return "/auth/complete-profile"
	}
	return "/" + string(r) + "/dashboard"
}

// RoleForPath returns the role owning the first segment of path. Matching is
// per segment, so /administrator is not an admin path.
func RoleForPath(path string) (Role, bool) {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	for _, r := range Roles {
		if seg == string(r) {
			return r, true
		}
	}
	return "", false
}

// CanVisit reports whether path is outside every other role's prefix.
func (r Role) CanVisit(path string) bool {
	owner, ok := RoleForPath(path)
	return !ok || owner == r
}

// Status is the account state reported by the API.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
)

// User is the cached copy of the API's identity record.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	FirstName     string    `json:"firstName,omitempty"`
	LastName      string    `json:"lastName,omitempty"`
	Role          Role      `json:"role"`
	Status        Status    `json:"status,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	ProfileImage  string    `json:"profileImage,omitempty"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	Provider      string    `json:"provider,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	PhoneVerified bool      `json:"phoneVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Merge overlays the non-empty fields of fresh onto a copy of u.
// Verification flags always follow fresh.
func (u User) Merge(fresh User) User {
	out := u
	if fresh.ID != "" {
		out.ID = fresh.ID
	}
	if fresh.Email != "" {
		out.Email = fresh.Email
	}
	if fresh.Name != "" {
		out.Name = fresh.Name
	}
	if fresh.FirstName != "" {
		out.FirstName = fresh.FirstName
	}
	if fresh.LastName != "" {
		out.LastName = fresh.LastName
	}
	if fresh.Role != "" {
		out.Role = fresh.Role
	}
	if fresh.Status != "" {
		out.Status = fresh.Status
	}
	if fresh.Phone != "" {
		out.Phone = fresh.Phone
	}
	if fresh.ProfileImage != "" {
		out.ProfileImage = fresh.ProfileImage
	}
	if fresh.AvatarURL != "" {
		out.AvatarURL = fresh.AvatarURL
	}
	if fresh.Provider != "" {
		out.Provider = fresh.Provider
	}
	if !fresh.CreatedAt.IsZero() {
		out.CreatedAt = fresh.CreatedAt
	}
	if !fresh.UpdatedAt.IsZero() {
		out.UpdatedAt = fresh.UpdatedAt
	}
	out.EmailVerified = fresh.EmailVerified
	out.PhoneVerified = fresh.PhoneVerified
	return out
}

// DisplayName picks the best human label for the user.
func (u User) DisplayName() string {
	switch {
	case u.Name != "":
		return u.Name
	case u.FirstName != "" || u.LastName != "":
		if u.LastName == "" {
			return u.FirstName
		}
		if u.FirstName == "" {
			return u.LastName
		}
		return u.FirstName + " " + u.LastName
	default:
		return u.Email
	}
}

// AuthResult is what the API returns from login, register and OAuth.
type AuthResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

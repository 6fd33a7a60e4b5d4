package domain

import "fmt"

// CreateManagedUser is the payload an employer submits to add a client or
// worker account.
type CreateManagedUser struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ManagedStats summarises a managed-user list for the banner.
type ManagedStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ManagedUserList is a page of managed users with its summary.
type ManagedUserList struct {
	Users []User       `json:"users"`
	Stats ManagedStats `json:"stats"`
}

// NewManagedUserList computes stats for users. A user without a status
// counts as active.
func NewManagedUserList(users []User) ManagedUserList {
	if users == nil {
		users = []User{}
	}
	stats := ManagedStats{Total: len(users)}
	for _, u := range users {
		switch u.Status {
		case StatusActive, "":
			stats.Active++
		case StatusInactive:
			stats.Inactive++
		}
	}
	return ManagedUserList{Users: users, Stats: stats}
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// CreateFailedToast is shown when the API rejects a new managed account.
func CreateFailedToast(role Role) Toast {
	return ErrorToast(fmt.Sprintf("Failed to create %s. Email might be taken.", role))
}

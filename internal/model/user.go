package model

import "time"

// User represents a registered campus user.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	RollNumber    string    `json:"roll_number"`
	Hostel        string    `json:"hostel,omitempty"`
	ContactNumber string    `json:"contact_number"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

// Roles.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

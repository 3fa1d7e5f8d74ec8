package model

import "time"

// User is an account on the platform.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) GetID() string { return u.ID }

// IsAdmin reports whether the user can reach the admin screens.
func (u User) IsAdmin() bool { return u.Role == "admin" }

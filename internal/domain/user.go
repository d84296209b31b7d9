package domain

import "time"

type UserRole string

const (
	RoleGuest   UserRole = "guest"
	RoleHost    UserRole = "host"
	RoleAdmin   UserRole = "admin"
	RolePartner UserRole = "partner"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package domain

import "time"

// Role represents a user role
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleWaiter   Role = "WAITER"
)

// User represents a registered user. Email is the identity.
type User struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	ImageURL     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "First Last"
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

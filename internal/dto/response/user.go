package response

import "time"

// UserResponse is the public view of an account. The credential hash is
// never part of it.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	AccountType string     `json:"accountType"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// LoginResponse mirrors the fields the login endpoint has always exposed.
type LoginResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	AccountType string     `json:"accountType"`
	LastLogin   *time.Time `json:"lastLogin"`
}

package entity

import "time"

type AccountType string

const (
	AccountTenant     AccountType = "tenant"
	AccountLandlord   AccountType = "landlord"
	AccountTechnician AccountType = "technician"
	AccountAdmin      AccountType = "admin"
)

// ValidAccountType reports whether t is one of the four closed roles.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTenant, AccountLandlord, AccountTechnician, AccountAdmin:
		return true
	}
	return false
}

// User is an account permitted to authenticate. ID is a string because
// the primary key's storage type is deployment-dependent (integer
// sequence or UUID); queries read it as text and cast bound parameters
// back to the detected type.
type User struct {
	ID           string      `db:"id"`
	Username     string      `db:"username"`
	FullName     string      `db:"fullName"`
	Email        string      `db:"email"`
	PhoneNumber  string      `db:"phoneNumber"`
	AccountType  AccountType `db:"accountType"`
	PasswordHash string      `db:"password"`
	IsActive     bool        `db:"isActive"`
	LastLogin    *time.Time  `db:"lastLogin"`
	CreatedAt    time.Time   `db:"createdAt"`
	UpdatedAt    time.Time   `db:"updatedAt"`
}

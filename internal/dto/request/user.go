package request

// UpdateUserRequest is a partial update: nil fields are left untouched.
type UpdateUserRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,len=9,numeric"`
	AccountType *string `json:"accountType" validate:"omitempty,oneof=tenant landlord technician admin"`
}

// UserStatusRequest toggles suspension. IsActive is typed any on purpose:
// only a strict JSON boolean is accepted, anything else is a validation
// error rather than a coercion.
type UserStatusRequest struct {
	IsActive any `json:"isActive"`
}

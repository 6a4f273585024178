package request

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=9,numeric"`
	AccountType string `json:"accountType" validate:"omitempty,oneof=tenant landlord technician admin"`
	Password    string `json:"password" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

package request

type CreatePropertyRequest struct {
	LandlordID           string   `json:"landlordId" validate:"required"`
	Title                string   `json:"title" validate:"required,max=200"`
	Description          *string  `json:"description"`
	Location             string   `json:"location" validate:"required,max=200"`
	Price                float64  `json:"price" validate:"required,gt=0"`
	PropertyType         *string  `json:"propertyType" validate:"omitempty,max=50"`
	Bedrooms             *int     `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms            *int     `json:"bathrooms" validate:"omitempty,min=0"`
	Area                 *float64 `json:"area" validate:"omitempty,gt=0"`
	Picture              *string  `json:"picture"`
	Video                *string  `json:"video"`
	VerificationDocument *string  `json:"verificationDocument"`
}

// UpdatePropertyRequest is a partial update: nil fields are left untouched.
type UpdatePropertyRequest struct {
	Title                *string  `json:"title" validate:"omitempty,max=200"`
	Description          *string  `json:"description"`
	Location             *string  `json:"location" validate:"omitempty,max=200"`
	Price                *float64 `json:"price" validate:"omitempty,gt=0"`
	PropertyType         *string  `json:"propertyType" validate:"omitempty,max=50"`
	Bedrooms             *int     `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms            *int     `json:"bathrooms" validate:"omitempty,min=0"`
	Area                 *float64 `json:"area" validate:"omitempty,gt=0"`
	Picture              *string  `json:"picture"`
	Video                *string  `json:"video"`
	VerificationDocument *string  `json:"verificationDocument"`
}

type PaymentRequest struct {
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,max=50"`
}

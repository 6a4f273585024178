package response

import "time"

type PropertyResponse struct {
	ID                   int64     `json:"id"`
	LandlordID           string    `json:"landlordId"`
	Title                string    `json:"title"`
	Description          *string   `json:"description"`
	Location             string    `json:"location"`
	Price                float64   `json:"price"`
	PropertyType         *string   `json:"propertyType"`
	Bedrooms             *int      `json:"bedrooms"`
	Bathrooms            *int      `json:"bathrooms"`
	Area                 *float64  `json:"area"`
	Picture              *string   `json:"picture"`
	Video                *string   `json:"video"`
	VerificationDocument *string   `json:"verificationDocument"`
	Status               string    `json:"status"`
	PaymentStatus        string    `json:"paymentStatus"`
	PaymentMethod        *string   `json:"paymentMethod"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// PropertyWithOwnerResponse adds the owning account's public identity,
// as returned by the list and detail endpoints.
type PropertyWithOwnerResponse struct {
	PropertyResponse
	Username *string `json:"username"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
}

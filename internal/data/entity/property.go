package entity

import "time"

type PropertyStatus string

const (
	StatusPending            PropertyStatus = "pending"
	StatusApproved           PropertyStatus = "approved"
	StatusRejected           PropertyStatus = "rejected"
	StatusForwardedToCouncil PropertyStatus = "forwarded_to_council"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Property is a listing owned by a landlord account. LandlordID mirrors
// User.ID: it is read as text regardless of the column's storage type.
type Property struct {
	ID                   int64          `db:"id"`
	LandlordID           string         `db:"landlordId"`
	Title                string         `db:"title"`
	Description          *string        `db:"description"`
	Location             string         `db:"location"`
	Price                float64        `db:"price"`
	PropertyType         *string        `db:"propertyType"`
	Bedrooms             *int           `db:"bedrooms"`
	Bathrooms            *int           `db:"bathrooms"`
	Area                 *float64       `db:"area"`
	Picture              *string        `db:"picture"`
	Video                *string        `db:"video"`
	VerificationDocument *string        `db:"verificationDocument"`
	Status               PropertyStatus `db:"status"`
	PaymentStatus        PaymentStatus  `db:"paymentStatus"`
	PaymentMethod        *string        `db:"paymentMethod"`
	CreatedAt            time.Time      `db:"createdAt"`
	UpdatedAt            time.Time      `db:"updatedAt"`
}

// PropertyWithOwner joins the owning account's public identity onto the
// listing. Owner fields are nullable because the list query tolerates
// orphaned rows via LEFT JOIN.
type PropertyWithOwner struct {
	Property
	OwnerUsername *string `db:"username"`
	OwnerFullName *string `db:"fullName"`
	OwnerEmail    *string `db:"email"`
}

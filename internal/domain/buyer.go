package domain

import "time"

// Buyer is a registered user able to own orders. Company accounts share the
// table but are flagged and cannot place orders.
type Buyer struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	IdentityNumber string    `json:"identityNumber,omitempty"`
	Company        bool      `json:"company"`
	CreatedAt      time.Time `json:"createdAt"`
}

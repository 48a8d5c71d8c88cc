package model

import "time"

// Account status constants
const (
	AccountStatusActive    = "ACTIVE"
	AccountStatusSuspended = "SUSPENDED"
)

// Account is a customer ad account the service can provision against.
// Token fields hold AES-GCM encrypted values and never leave the service.
type Account struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`

	// Encrypted credentials
	RefreshTokenEnc   string `json:"-"`
	DeveloperTokenEnc string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

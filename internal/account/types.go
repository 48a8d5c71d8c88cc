package account

import (
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

// ==========================================================
// Inputs
// ==========================================================

// CreateInput carries a new ad account registration.
// Tokens arrive in plaintext and are encrypted before storage.
type CreateInput struct {
	CustomerID     string
	Name           string
	RefreshToken   string
	DeveloperToken string
}

// ListInput filters the account listing
type ListInput struct {
	Status        string
	PaginateQuery paginator.PaginateQuery
}

// ==========================================================
// Outputs
// ==========================================================

// AccountOutput wraps one account
type AccountOutput struct {
	Account model.Account
}

// ListOutput wraps an account page
type ListOutput struct {
	Accounts  []model.Account
	Paginator paginator.Paginator
}

// Credentials holds decrypted API credentials for one account
type Credentials struct {
	CustomerID     string
	RefreshToken   string
	DeveloperToken string
}

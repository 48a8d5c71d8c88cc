package repository

import "campaign-srv/pkg/paginator"

// CreateAccountOptions - Options for CreateAccount operation.
// Token fields are already encrypted by the usecase.
type CreateAccountOptions struct {
	ID                string
	CustomerID        string
	Name              string
	Status            string
	RefreshTokenEnc   string
	DeveloperTokenEnc string
}

// GetAccountsOptions - Options for GetAccounts query (with pagination)
type GetAccountsOptions struct {
	// Filters
	Status string // Filter by status (ACTIVE, SUSPENDED)

	// Pagination (REQUIRED for Get)
	PaginateQuery paginator.PaginateQuery
}

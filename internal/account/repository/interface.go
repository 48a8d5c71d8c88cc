package repository

import (
	"context"

	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateAccount(ctx context.Context, opt CreateAccountOptions) (model.Account, error)
	DetailAccount(ctx context.Context, customerID string) (model.Account, error)
	GetAccounts(ctx context.Context, opt GetAccountsOptions) ([]model.Account, paginator.Paginator, error)
	UpdateAccountStatus(ctx context.Context, customerID string, status string) error
}

package account

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (AccountOutput, error)
	Detail(ctx context.Context, customerID string) (AccountOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Credentials(ctx context.Context, customerID string) (Credentials, error)
	Suspend(ctx context.Context, customerID string) error
	Activate(ctx context.Context, customerID string) error
}

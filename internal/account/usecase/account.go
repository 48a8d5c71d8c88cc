package usecase

import (
	"context"

	"github.com/google/uuid"

	"campaign-srv/internal/account"
	"campaign-srv/internal/account/repository"
	"campaign-srv/internal/model"
)

// Create registers a new ad account, encrypting its API tokens before storage.
func (uc *implUseCase) Create(ctx context.Context, input account.CreateInput) (account.AccountOutput, error) {
	if input.CustomerID == "" {
		return account.AccountOutput{}, account.ErrCustomerIDRequired
	}
	if input.Name == "" {
		return account.AccountOutput{}, account.ErrNameRequired
	}
	if input.RefreshToken == "" || input.DeveloperToken == "" {
		return account.AccountOutput{}, account.ErrTokenRequired
	}

	refreshEnc, err := uc.encrypter.Encrypt(input.RefreshToken)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Create: failed to encrypt refresh token: %v", err)
		return account.AccountOutput{}, err
	}

	developerEnc, err := uc.encrypter.Encrypt(input.DeveloperToken)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Create: failed to encrypt developer token: %v", err)
		return account.AccountOutput{}, err
	}

	acc, err := uc.repo.CreateAccount(ctx, repository.CreateAccountOptions{
		ID:                uuid.NewString(),
		CustomerID:        input.CustomerID,
		Name:              input.Name,
		Status:            model.AccountStatusActive,
		RefreshTokenEnc:   refreshEnc,
		DeveloperTokenEnc: developerEnc,
	})
	if err != nil {
		if err == repository.ErrDuplicateKey {
			return account.AccountOutput{}, account.ErrAccountExisted
		}
		uc.l.Errorf(ctx, "account.usecase.Create: failed to create account: %v", err)
		return account.AccountOutput{}, err
	}

	return account.AccountOutput{Account: acc}, nil
}

// Detail returns one account by customer ID.
func (uc *implUseCase) Detail(ctx context.Context, customerID string) (account.AccountOutput, error) {
	if customerID == "" {
		return account.AccountOutput{}, account.ErrCustomerIDRequired
	}

	acc, err := uc.repo.DetailAccount(ctx, customerID)
	if err != nil {
		if err == repository.ErrAccountNotFound {
			return account.AccountOutput{}, account.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "account.usecase.Detail: failed to get account: %v", err)
		return account.AccountOutput{}, err
	}

	return account.AccountOutput{Account: acc}, nil
}

// List returns a page of accounts.
func (uc *implUseCase) List(ctx context.Context, input account.ListInput) (account.ListOutput, error) {
	accounts, pag, err := uc.repo.GetAccounts(ctx, repository.GetAccountsOptions{
		Status:        input.Status,
		PaginateQuery: input.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.List: failed to list accounts: %v", err)
		return account.ListOutput{}, err
	}

	return account.ListOutput{
		Accounts:  accounts,
		Paginator: pag,
	}, nil
}

// Credentials returns the decrypted API credentials for an active account.
func (uc *implUseCase) Credentials(ctx context.Context, customerID string) (account.Credentials, error) {
	out, err := uc.Detail(ctx, customerID)
	if err != nil {
		return account.Credentials{}, err
	}

	if out.Account.Status == model.AccountStatusSuspended {
		return account.Credentials{}, account.ErrAccountSuspended
	}

	refreshToken, err := uc.encrypter.Decrypt(out.Account.RefreshTokenEnc)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Credentials: failed to decrypt refresh token: %v", err)
		return account.Credentials{}, err
	}

	developerToken, err := uc.encrypter.Decrypt(out.Account.DeveloperTokenEnc)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Credentials: failed to decrypt developer token: %v", err)
		return account.Credentials{}, err
	}

	return account.Credentials{
		CustomerID:     out.Account.CustomerID,
		RefreshToken:   refreshToken,
		DeveloperToken: developerToken,
	}, nil
}

// Suspend marks an account as suspended. Suspended accounts cannot provision.
func (uc *implUseCase) Suspend(ctx context.Context, customerID string) error {
	return uc.setStatus(ctx, customerID, model.AccountStatusSuspended)
}

// Activate re-enables a suspended account.
func (uc *implUseCase) Activate(ctx context.Context, customerID string) error {
	return uc.setStatus(ctx, customerID, model.AccountStatusActive)
}

func (uc *implUseCase) setStatus(ctx context.Context, customerID string, status string) error {
	if customerID == "" {
		return account.ErrCustomerIDRequired
	}

	if err := uc.repo.UpdateAccountStatus(ctx, customerID, status); err != nil {
		if err == repository.ErrAccountNotFound {
			return account.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "account.usecase.setStatus: failed to update status: %v", err)
		return err
	}

	return nil
}

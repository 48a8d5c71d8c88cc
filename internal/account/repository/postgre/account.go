package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"campaign-srv/internal/account/repository"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

const accountColumns = `id, customer_id, name, status, refresh_token_enc, developer_token_enc, created_at, updated_at`

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// CreateAccount inserts a new ad account record.
func (r *implRepository) CreateAccount(ctx context.Context, opt repository.CreateAccountOptions) (model.Account, error) {
	now := time.Now()

	query := `
		INSERT INTO accounts (id, customer_id, name, status, refresh_token_enc, developer_token_enc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.CustomerID, opt.Name, opt.Status,
		opt.RefreshTokenEnc, opt.DeveloperTokenEnc, now)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.Account{}, repository.ErrDuplicateKey
		}
		r.l.Errorf(ctx, "account.repository.postgre.CreateAccount: failed to insert account: %v", err)
		return model.Account{}, repository.ErrFailedToInsert
	}

	return model.Account{
		ID:                opt.ID,
		CustomerID:        opt.CustomerID,
		Name:              opt.Name,
		Status:            opt.Status,
		RefreshTokenEnc:   opt.RefreshTokenEnc,
		DeveloperTokenEnc: opt.DeveloperTokenEnc,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// DetailAccount fetches one account by customer ID.
func (r *implRepository) DetailAccount(ctx context.Context, customerID string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1`

	var acc model.Account
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(
		&acc.ID, &acc.CustomerID, &acc.Name, &acc.Status,
		&acc.RefreshTokenEnc, &acc.DeveloperTokenEnc,
		&acc.CreatedAt, &acc.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Account{}, repository.ErrAccountNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.DetailAccount: failed to get account: %v", err)
		return model.Account{}, repository.ErrFailedToGet
	}

	return acc, nil
}

// GetAccounts lists accounts with filters and pagination.
func (r *implRepository) GetAccounts(ctx context.Context, opt repository.GetAccountsOptions) ([]model.Account, paginator.Paginator, error) {
	opt.PaginateQuery.Adjust()

	conds := []string{}
	args := []any{}
	if opt.Status != "" {
		args = append(args, opt.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.GetAccounts: failed to count accounts: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}

	query := fmt.Sprintf(`SELECT `+accountColumns+` FROM accounts`+where+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, opt.PaginateQuery.Limit, opt.PaginateQuery.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.GetAccounts: failed to list accounts: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.CustomerID, &acc.Name, &acc.Status,
			&acc.RefreshTokenEnc, &acc.DeveloperTokenEnc,
			&acc.CreatedAt, &acc.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "account.repository.postgre.GetAccounts: failed to scan account: %v", err)
			return nil, paginator.Paginator{}, repository.ErrFailedToList
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.GetAccounts: rows error: %v", err)
		return nil, paginator.Paginator{}, repository.ErrFailedToList
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(accounts)),
		PerPage:     opt.PaginateQuery.Limit,
		CurrentPage: opt.PaginateQuery.Page,
	}

	return accounts, pag, nil
}

// UpdateAccountStatus sets the status of one account.
func (r *implRepository) UpdateAccountStatus(ctx context.Context, customerID string, status string) error {
	query := `UPDATE accounts SET status = $2, updated_at = $3 WHERE customer_id = $1`

	res, err := r.db.ExecContext(ctx, query, customerID, status, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.UpdateAccountStatus: failed to update account: %v", err)
		return repository.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

package http

import (
	"campaign-srv/internal/account"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
	"campaign-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

// createAccountReq - Request body for Create
type createAccountReq struct {
	CustomerID     string `json:"customer_id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	RefreshToken   string `json:"refresh_token" binding:"required"`
	DeveloperToken string `json:"developer_token" binding:"required"`
}

// toInput - Convert to UseCase input
func (r createAccountReq) toInput() account.CreateInput {
	return account.CreateInput{
		CustomerID:     r.CustomerID,
		Name:           r.Name,
		RefreshToken:   r.RefreshToken,
		DeveloperToken: r.DeveloperToken,
	}
}

// listAccountsReq - Query params for List
type listAccountsReq struct {
	Status string `form:"status"`
	paginator.PaginateQuery
}

// toInput - Convert to UseCase input
func (r listAccountsReq) toInput() account.ListInput {
	return account.ListInput{
		Status:        r.Status,
		PaginateQuery: r.PaginateQuery,
	}
}

// =====================================================
// Response DTOs
// =====================================================

// accountResp - One ad account. Token fields never leave the service.
type accountResp struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// listAccountsResp - Page of accounts
type listAccountsResp struct {
	Accounts []accountResp               `json:"accounts"`
	Meta     paginator.PaginatorResponse `json:"meta"`
}

func newAccountResp(acc model.Account) accountResp {
	return accountResp{
		ID:         acc.ID,
		CustomerID: acc.CustomerID,
		Name:       acc.Name,
		Status:     acc.Status,
		CreatedAt:  acc.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt:  acc.UpdatedAt.Format(response.DateTimeFormat),
	}
}

// newListAccountsResp - Convert UseCase output to response
func (h *handler) newListAccountsResp(output account.ListOutput) listAccountsResp {
	accounts := make([]accountResp, 0, len(output.Accounts))
	for _, acc := range output.Accounts {
		accounts = append(accounts, newAccountResp(acc))
	}
	return listAccountsResp{
		Accounts: accounts,
		Meta:     output.Paginator.ToResponse(),
	}
}

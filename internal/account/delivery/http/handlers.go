package http

import (
	"github.com/gin-gonic/gin"

	"campaign-srv/pkg/response"
)

// Create - Handler for POST /accounts
// @Summary Register an ad account
// @Description Registers a customer ad account with its API credentials
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body createAccountReq true "Account registration"
// @Success 200 {object} accountResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /accounts [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Create: Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAccountResp(output.Account))
}

// Detail - Handler for GET /accounts/:customer_id
// @Summary Get one ad account
// @Tags Accounts
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} accountResp
// @Failure 404 {object} response.Resp
// @Router /accounts/{customer_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := h.processCustomerIDParam(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Detail(ctx, customerID)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Detail: Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAccountResp(output.Account))
}

// List - Handler for GET /accounts
// @Summary List ad accounts
// @Tags Accounts
// @Produce json
// @Param status query string false "Account status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listAccountsResp
// @Failure 500 {object} response.Resp
// @Router /accounts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.List: List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListAccountsResp(output))
}

// Suspend - Handler for POST /accounts/:customer_id/suspend
// @Summary Suspend an ad account
// @Description Suspended accounts cannot run the provisioning pipeline
// @Tags Accounts
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /accounts/{customer_id}/suspend [post]
func (h *handler) Suspend(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := h.processCustomerIDParam(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Suspend(ctx, customerID); err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Suspend: Suspend failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gin.H{"customer_id": customerID, "status": "SUSPENDED"})
}

// Activate - Handler for POST /accounts/:customer_id/activate
// @Summary Re-activate a suspended ad account
// @Tags Accounts
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /accounts/{customer_id}/activate [post]
func (h *handler) Activate(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := h.processCustomerIDParam(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Activate(ctx, customerID); err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Activate: Activate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gin.H{"customer_id": customerID, "status": "ACTIVE"})
}

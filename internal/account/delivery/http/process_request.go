package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createAccountReq, error) {
	var req createAccountReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "account.delivery.http.processCreateReq: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}

func (h *handler) processCustomerIDParam(c *gin.Context) (string, error) {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return "", errors.New("customer_id is required")
	}
	return customerID, nil
}

func (h *handler) processListReq(c *gin.Context) (listAccountsReq, error) {
	var req listAccountsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "account.delivery.http.processListReq: ShouldBindQuery failed: %v", err)
		return req, err
	}

	return req, nil
}

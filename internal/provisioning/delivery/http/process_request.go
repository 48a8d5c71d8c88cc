package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campaign-srv/pkg/scope"
)

func (h *handler) processProvisionReq(c *gin.Context) (provisionReq, string, error) {
	var req provisionReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "provisioning.delivery.http.processProvisionReq: ShouldBindJSON failed: %v", err)
		return req, "", err
	}

	if err := req.validate(); err != nil {
		h.l.Errorf(ctx, "provisioning.delivery.http.processProvisionReq: validate failed: %v", err)
		return req, "", err
	}

	// ServiceAuth stores the calling service's name; JWT-authenticated
	// callers carry a scope instead.
	requestedBy := c.GetString("service_name")
	if requestedBy == "" {
		if sc, ok := scope.GetScopeFromContext(ctx); ok {
			requestedBy = sc.UserID
		}
	}
	if requestedBy == "" {
		h.l.Errorf(ctx, "provisioning.delivery.http.processProvisionReq: caller identity not found")
		return req, "", errors.New("caller identity not found")
	}

	return req, requestedBy, nil
}

func (h *handler) processGetRunReq(c *gin.Context) (string, error) {
	runID := c.Param("id")
	if runID == "" {
		return "", errors.New("run id is required")
	}
	return runID, nil
}

func (h *handler) processListRunsReq(c *gin.Context) (listRunsReq, error) {
	var req listRunsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "provisioning.delivery.http.processListRunsReq: ShouldBindQuery failed: %v", err)
		return req, err
	}

	return req, nil
}

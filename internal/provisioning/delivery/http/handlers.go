package http

import (
	"github.com/gin-gonic/gin"

	"campaign-srv/pkg/response"
)

// Provision - Handler for POST /provisioning/runs
// @Summary Run the campaign provisioning pipeline
// @Description Creates a budget, campaign, ad group, text ads and keywords for a customer account
// @Tags Provisioning
// @Accept json
// @Produce json
// @Param body body provisionReq true "Provision request"
// @Success 200 {object} runDetailResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /provisioning/runs [post]
func (h *handler) Provision(c *gin.Context) {
	ctx := c.Request.Context()

	req, requestedBy, err := h.processProvisionReq(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Provision(ctx, req.toInput(requestedBy))
	if err != nil {
		h.l.Errorf(ctx, "provisioning.delivery.http.Provision: Provision failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRunDetailResp(output.Run, output.Resources))
}

// GetRun - Handler for GET /provisioning/runs/:id
// @Summary Get one provisioning run
// @Description Returns a run with every resource it created
// @Tags Provisioning
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} runDetailResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /provisioning/runs/{id} [get]
func (h *handler) GetRun(c *gin.Context) {
	ctx := c.Request.Context()

	runID, err := h.processGetRunReq(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetRun(ctx, runID)
	if err != nil {
		h.l.Errorf(ctx, "provisioning.delivery.http.GetRun: GetRun failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRunDetailResp(output.Run, output.Resources))
}

// ListRuns - Handler for GET /provisioning/runs
// @Summary List provisioning runs
// @Description Lists runs, optionally filtered by customer and status
// @Tags Provisioning
// @Produce json
// @Param customer_id query string false "Customer ID"
// @Param status query string false "Run status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listRunsResp
// @Failure 500 {object} response.Resp
// @Router /provisioning/runs [get]
func (h *handler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRunsReq(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.ListRuns(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "provisioning.delivery.http.ListRuns: ListRuns failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListRunsResp(output))
}

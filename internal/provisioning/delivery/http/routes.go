package http

import (
	"github.com/gin-gonic/gin"

	"campaign-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	runs := r.Group("/provisioning/runs")
	{
		// Synchronous trigger is service-to-service only.
		runs.POST("", mw.ServiceAuth(), h.Provision)
		runs.GET("", mw.Auth(), h.ListRuns)
		runs.GET("/:id", mw.Auth(), h.GetRun)
	}
}

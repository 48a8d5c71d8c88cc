package http

import (
	"github.com/gin-gonic/gin"

	"campaign-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	accounts := r.Group("/accounts")
	accounts.Use(mw.Auth())
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.GET("/:customer_id", h.Detail)
		accounts.POST("/:customer_id/suspend", h.Suspend)
		accounts.POST("/:customer_id/activate", h.Activate)
	}
}

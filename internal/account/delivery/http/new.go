package http

import (
	"github.com/gin-gonic/gin"

	"campaign-srv/internal/account"
	"campaign-srv/internal/middleware"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
	Suspend(c *gin.Context)
	Activate(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l       log.Logger
	uc      account.UseCase
	discord discord.IDiscord
}

// New creates a new HTTP handler
func New(l log.Logger, uc account.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

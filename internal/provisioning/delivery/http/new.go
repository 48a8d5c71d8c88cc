package http

import (
	"github.com/gin-gonic/gin"

	"campaign-srv/internal/middleware"
	"campaign-srv/internal/provisioning"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	Provision(c *gin.Context)
	GetRun(c *gin.Context)
	ListRuns(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l       log.Logger
	uc      provisioning.UseCase
	discord discord.IDiscord
}

// New creates a new HTTP handler
func New(l log.Logger, uc provisioning.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

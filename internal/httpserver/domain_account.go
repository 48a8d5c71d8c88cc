package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "campaign-srv/internal/account/delivery/http"
	accountPostgre "campaign-srv/internal/account/repository/postgre"
	accountUsecase "campaign-srv/internal/account/usecase"
	"campaign-srv/internal/middleware"
)

func (srv *HTTPServer) setupAccountDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := accountPostgre.New(srv.l, srv.postgresDB)

	uc := accountUsecase.New(srv.l, repo, srv.encrypter)
	srv.accountUC = uc

	handler := accountHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Account domain registered")
	return nil
}

package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"campaign-srv/internal/middleware"
	provisioningHTTP "campaign-srv/internal/provisioning/delivery/http"
	provisioningProducer "campaign-srv/internal/provisioning/delivery/kafka/producer"
	provisioningPostgre "campaign-srv/internal/provisioning/repository/postgre"
	provisioningRedis "campaign-srv/internal/provisioning/repository/redis"
	provisioningUsecase "campaign-srv/internal/provisioning/usecase"
)

// setupProvisioningDomain initializes the provisioning domain
// (repo -> usecase -> delivery). Depends on the account domain.
func (srv *HTTPServer) setupProvisioningDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := provisioningPostgre.New(srv.l, srv.postgresDB)
	cache := provisioningRedis.New(srv.l, srv.redisClient,
		time.Duration(srv.config.Provisioning.RunCacheTTL)*time.Second)

	producer := provisioningProducer.New(srv.l, srv.kafkaProducer)

	uc := provisioningUsecase.New(
		srv.l,
		provisioningUsecase.Config{
			ReportBucket: srv.config.MinIO.Bucket,
			ReportExpiry: time.Duration(srv.config.Provisioning.ReportExpiry) * time.Second,
		},
		repo,
		cache,
		srv.accountUC,
		srv.gadsClient,
		srv.adwordsClient,
		srv.minioClient,
		producer,
	)

	handler := provisioningHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Provisioning domain registered")
	return nil
}

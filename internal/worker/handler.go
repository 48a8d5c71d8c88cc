package worker

import (
	"context"
	"fmt"
	"time"

	accountPostgre "campaign-srv/internal/account/repository/postgre"
	accountUsecase "campaign-srv/internal/account/usecase"
	provisioningConsumer "campaign-srv/internal/provisioning/delivery/kafka/consumer"
	provisioningProducer "campaign-srv/internal/provisioning/delivery/kafka/producer"
	provisioningPostgre "campaign-srv/internal/provisioning/repository/postgre"
	provisioningRedis "campaign-srv/internal/provisioning/repository/redis"
	provisioningUsecase "campaign-srv/internal/provisioning/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	provisioningConsumer *provisioningConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *Server) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Account domain
	accountRepo := accountPostgre.New(srv.l, srv.postgresDB)
	accountUC := accountUsecase.New(srv.l, accountRepo, srv.encrypter)

	// Provisioning domain
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
		accountUC,
		srv.gadsClient,
		srv.adwordsClient,
		srv.minioClient,
		producer,
	)

	cons, err := provisioningConsumer.New(provisioningConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     uc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provisioning consumer: %w", err)
	}

	srv.l.Infof(ctx, "Provisioning domain initialized")

	return &domainConsumers{
		provisioningConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *Server) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.provisioningConsumer.ConsumeProvisionRequests(ctx); err != nil {
		return fmt.Errorf("failed to start provisioning consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *Server) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.provisioningConsumer != nil {
		if err := consumers.provisioningConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing provisioning consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}

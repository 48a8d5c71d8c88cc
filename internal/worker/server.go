package worker

import (
	"context"
	"database/sql"

	"campaign-srv/config"
	"campaign-srv/pkg/adwords"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/encrypter"
	"campaign-srv/pkg/googleads"
	pkgKafka "campaign-srv/pkg/kafka"
	"campaign-srv/pkg/log"
	"campaign-srv/pkg/minio"
	"campaign-srv/pkg/redis"
)

// Server is the Kafka worker orchestrator. It consumes provisioning
// requests and runs the pipeline in the background.
type Server struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Ad platform clients
	gadsClient    googleads.IGoogleAds
	adwordsClient adwords.IAdWords

	// Security
	encrypter encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the worker server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Ad platform clients
	GoogleAds googleads.IGoogleAds
	AdWords   adwords.IAdWords

	// Security
	Encrypter encrypter.Encrypter

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the worker server and blocks until the context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful
// shutdown.
func (srv *Server) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Worker Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Worker Server stopped gracefully")
	return nil
}

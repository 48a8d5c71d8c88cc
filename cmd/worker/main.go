package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campaign-srv/config"
	configKafka "campaign-srv/config/kafka"
	configMinio "campaign-srv/config/minio"
	configPostgre "campaign-srv/config/postgre"
	configRedis "campaign-srv/config/redis"
	"campaign-srv/internal/worker"
	"campaign-srv/pkg/adwords"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/encrypter"
	"campaign-srv/pkg/googleads"
	"campaign-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campaign Worker Service...")

	// Kafka producer (for publishing run events)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Ad platform clients
	gadsClient := googleads.NewGoogleAds(googleads.Config{
		BaseURL:         cfg.GoogleAds.BaseURL,
		Version:         cfg.GoogleAds.Version,
		DeveloperToken:  cfg.GoogleAds.DeveloperToken,
		AccessToken:     cfg.GoogleAds.AccessToken,
		LoginCustomerID: cfg.GoogleAds.LoginCustomerID,
		Timeout:         time.Duration(cfg.GoogleAds.Timeout) * time.Second,
	})
	adwordsClient := adwords.NewAdWords(adwords.Config{
		BaseURL:          cfg.AdWords.BaseURL,
		Version:          cfg.AdWords.Version,
		DeveloperToken:   cfg.AdWords.DeveloperToken,
		AccessToken:      cfg.AdWords.AccessToken,
		ClientCustomerID: cfg.AdWords.ClientCustomerID,
		UserAgent:        cfg.AdWords.UserAgent,
		Timeout:          time.Duration(cfg.AdWords.Timeout) * time.Second,
	})
	logger.Info(ctx, "Ad platform clients initialized")

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Worker server
	srv, err := worker.New(worker.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		GoogleAds:     gadsClient,
		AdWords:       adwordsClient,
		Encrypter:     encrypter.New(cfg.Encrypter.Key),
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create worker server: %v", err)
		return
	}

	// Run worker server
	logger.Info(ctx, "Worker server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Worker server error: %v", err)
		return
	}

	logger.Info(ctx, "Worker server stopped gracefully")
}

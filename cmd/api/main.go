package main

import (
	"context"
	"fmt"
	"time"

	"campaign-srv/config"
	configKafka "campaign-srv/config/kafka"
	configMinio "campaign-srv/config/minio"
	configPostgre "campaign-srv/config/postgre"
	configRedis "campaign-srv/config/redis"
	_ "campaign-srv/docs" // Import swagger docs
	"campaign-srv/internal/httpserver"
	"campaign-srv/pkg/adwords"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/encrypter"
	"campaign-srv/pkg/googleads"
	pkgJWT "campaign-srv/pkg/jwt"
	"campaign-srv/pkg/log"
)

// @title       SMAP Campaign Service API
// @description SMAP Campaign Service API documentation.
// @version     1
// @BasePath    /api/v1
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)",
		cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 7. Initialize Kafka producer
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)

	// 8. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 9. Initialize JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// 10. Initialize ad platform clients
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

	// 11. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		MinIO:       minioClient,

		GoogleAds: gadsClient,
		AdWords:   adwordsClient,

		KafkaProducer: kafkaProducer,

		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 12. Run (blocks until shutdown signal)
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}

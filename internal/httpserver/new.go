package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"campaign-srv/config"
	"campaign-srv/internal/account"
	"campaign-srv/pkg/adwords"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/encrypter"
	"campaign-srv/pkg/googleads"
	pkgJWT "campaign-srv/pkg/jwt"
	pkgKafka "campaign-srv/pkg/kafka"
	"campaign-srv/pkg/log"
	"campaign-srv/pkg/minio"
	pkgRedis "campaign-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minioClient minio.MinIO

	// Ad Platform Clients
	gadsClient    googleads.IGoogleAds
	adwordsClient adwords.IAdWords

	// Messaging Configuration
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases (wired during mapHandlers)
	accountUC account.UseCase
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIO minio.MinIO

	// Ad Platform Clients
	GoogleAds googleads.IGoogleAds
	AdWords   adwords.IAdWords

	// Messaging Configuration
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		minioClient: cfg.MinIO,

		gadsClient:    cfg.GoogleAds,
		adwordsClient: cfg.AdWords,

		kafkaProducer: cfg.KafkaProducer,

		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minio client is required")
	}

	if srv.gadsClient == nil {
		return errors.New("google ads client is required")
	}
	if srv.adwordsClient == nil {
		return errors.New("adwords client is required")
	}

	if srv.kafkaProducer == nil {
		return errors.New("kafka producer is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	return nil
}

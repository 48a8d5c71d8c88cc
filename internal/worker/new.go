package worker

import (
	"fmt"
)

// New creates a new worker server with dependency validation
func New(cfg Config) (*Server, error) {
	srv := &Server{
		l:             cfg.Logger,
		config:        cfg.Config,
		redisClient:   cfg.RedisClient,
		postgresDB:    cfg.PostgresDB,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		gadsClient:    cfg.GoogleAds,
		adwordsClient: cfg.AdWords,
		encrypter:     cfg.Encrypter,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *Server) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	if srv.kafkaProducer == nil {
		return fmt.Errorf("kafka producer is required")
	}

	// Ad platform clients
	if srv.gadsClient == nil {
		return fmt.Errorf("google ads client is required")
	}
	if srv.adwordsClient == nil {
		return fmt.Errorf("adwords client is required")
	}

	// Security
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	return nil
}

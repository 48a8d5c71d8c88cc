package usecase

import (
	"time"

	"campaign-srv/internal/account"
	"campaign-srv/internal/provisioning"
	"campaign-srv/internal/provisioning/repository"
	"campaign-srv/pkg/adwords"
	"campaign-srv/pkg/googleads"
	"campaign-srv/pkg/log"
	"campaign-srv/pkg/minio"
)

// Config holds the usecase-level settings.
type Config struct {
	ReportBucket string
	ReportExpiry time.Duration
}

// implUseCase implements the provisioning.UseCase interface
type implUseCase struct {
	l        log.Logger
	cfg      Config
	repo     repository.Repository
	cache    repository.Cache
	accounts account.UseCase
	gads     googleads.IGoogleAds
	adwords  adwords.IAdWords
	minio    minio.MinIO
	producer provisioning.Producer
}

// New creates a new provisioning usecase
func New(
	l log.Logger,
	cfg Config,
	repo repository.Repository,
	cache repository.Cache,
	accounts account.UseCase,
	gads googleads.IGoogleAds,
	adwords adwords.IAdWords,
	minio minio.MinIO,
	producer provisioning.Producer,
) provisioning.UseCase {
	return &implUseCase{
		l:        l,
		cfg:      cfg,
		repo:     repo,
		cache:    cache,
		accounts: accounts,
		gads:     gads,
		adwords:  adwords,
		minio:    minio,
		producer: producer,
	}
}

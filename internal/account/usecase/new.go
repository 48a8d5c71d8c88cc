package usecase

import (
	"campaign-srv/internal/account"
	"campaign-srv/internal/account/repository"
	"campaign-srv/pkg/encrypter"
	"campaign-srv/pkg/log"
)

// implUseCase implements the account.UseCase interface
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	encrypter encrypter.Encrypter
}

// New creates a new account usecase
func New(
	l log.Logger,
	repo repository.Repository,
	encrypter encrypter.Encrypter,
) account.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		encrypter: encrypter,
	}
}

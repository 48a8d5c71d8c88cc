package postgre

import (
	"database/sql"

	"campaign-srv/internal/provisioning/repository"
	"campaign-srv/pkg/log"
)

// implRepository implements repository.Repository over PostgreSQL
type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a new PostgreSQL repository for the provisioning domain
func New(l log.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}

package redis

import (
	"time"

	"campaign-srv/internal/provisioning/repository"
	"campaign-srv/pkg/log"
	pkgRedis "campaign-srv/pkg/redis"
)

// implCache implements repository.Cache over Redis
type implCache struct {
	l     log.Logger
	redis pkgRedis.IRedis
	ttl   time.Duration
}

// New creates a Redis-backed run detail cache
func New(l log.Logger, r pkgRedis.IRedis, ttl time.Duration) repository.Cache {
	if ttl <= 0 {
		ttl = defaultRunDetailTTL
	}

	return &implCache{
		l:     l,
		redis: r,
		ttl:   ttl,
	}
}

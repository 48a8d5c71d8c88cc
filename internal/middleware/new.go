package middleware

import (
	"campaign-srv/config"
	"campaign-srv/pkg/encrypter"
	"campaign-srv/pkg/jwt"
	"campaign-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	jwtManager   jwt.IManager
	cookieConfig config.CookieConfig
	internalKey  string
	config       *config.Config
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, jwtManager jwt.IManager, cookieConfig config.CookieConfig, internalKey string, cfg *config.Config, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
		config:       cfg,
		encrypter:    enc,
	}
}

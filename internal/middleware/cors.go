package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
	Permissive       bool
}

// DefaultCORSConfig returns strict CORS in production and a permissive
// localhost-friendly config everywhere else.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowOrigins:     []string{"https://smap.hcmut.edu.vn"},
			AllowCredentials: true,
		}
	}

	return CORSConfig{
		AllowCredentials: true,
		Permissive:       true,
	}
}

func (cfg CORSConfig) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if cfg.Permissive {
		return strings.HasPrefix(origin, "http://localhost") ||
			strings.HasPrefix(origin, "http://127.0.0.1") ||
			strings.HasPrefix(origin, "https://")
	}
	for _, allowed := range cfg.AllowOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// CORS sets the CORS headers and short-circuits preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if cfg.allows(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Service-Key, lang")
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/config"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOriginFunc:  AllowOrigin(config.CORSAllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: AllowCredentials(config.CORSAllowedOrigins),
		MaxAge:           12 * time.Hour,
	}
	return cors.New(cfg)
}

// AllowOrigin matches an origin against exact entries and entries ending in
// "*", which match by prefix. A lone "*" allows everything.
func AllowOrigin(patterns []string) func(origin string) bool {
	return func(origin string) bool {
		for _, p := range patterns {
			if p == "*" {
				return true
			}
			if prefix, ok := strings.CutSuffix(p, "*"); ok {
				if strings.HasPrefix(origin, prefix) {
					return true
				}
				continue
			}
			if origin == p {
				return true
			}
		}
		return false
	}
}

// AllowCredentials is false when the patterns include a lone "*", so a
// wildcard list never reflects arbitrary origins with credentials.
func AllowCredentials(patterns []string) bool {
	for _, p := range patterns {
		if p == "*" {
			return false
		}
	}
	return true
}

package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/internal/api/middleware"
	"github.com/linskybing/formkit/internal/api/routes"
	"gorm.io/gorm"
)

// SetupRouter builds the server's router, middleware included, against db.
func SetupRouter(gormDB *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.MetricsMiddleware())
	routes.RegisterRoutes(r, gormDB)
	return r
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/formkit/docs"
	"github.com/linskybing/formkit/internal/api/handlers"
	"github.com/linskybing/formkit/internal/api/middleware"
	"github.com/linskybing/formkit/internal/application"
	"github.com/linskybing/formkit/internal/metrics"
	"github.com/linskybing/formkit/internal/repository"
	"github.com/linskybing/formkit/internal/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// init
	repos_instance := repository.NewRepositories(db)
	services_instance := application.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	r.NoRoute(middleware.NotFound)
	r.GET("/ping", handlers.Ping)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/")
	api.Use(middleware.ErrorHandler())
	{
		forms := api.Group("/forms")
		{
			forms.GET("", handlers_instance.Form.ListForms)
			forms.GET("/:id", handlers_instance.Form.GetFormByID)
			forms.POST("", handlers_instance.Form.CreateForm)
		}

		records := api.Group("/source-records")
		{
			records.GET("/:formId", handlers_instance.SourceRecord.ListSourceRecords)
			records.POST("/:formId", handlers_instance.SourceRecord.CreateSourceRecord)
		}
	}

	r.SetHTMLTemplate(web.Templates())
	web.New(services_instance).Register(r)
}

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/handlers"
	"github.com/sumit03062/Task-Tracker/internal/middleware"
	"github.com/sumit03062/Task-Tracker/internal/services"
	"github.com/sumit03062/Task-Tracker/internal/types"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(services.NewUserService(database))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(database))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(database))

	authed := middleware.AuthMiddleware(database)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", authed, authHandler.Profile)
		}

		projects := api.Group("/projects", authed)
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.PUT("/:project_id", projectHandler.Update)
			projects.DELETE("/:project_id", projectHandler.Delete)
		}

		tasks := api.Group("/tasks", authed)
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/:project_id", taskHandler.ListByProject)
			tasks.POST("", taskHandler.Create)
			tasks.PUT("/:task_id", taskHandler.Update)
			tasks.DELETE("/:task_id", taskHandler.Delete)
		}
	}

	return r
}

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/auth"
	"github.com/omnical-dev/omnical/internal/handlers"
	"github.com/omnical-dev/omnical/internal/middleware"
	"github.com/omnical-dev/omnical/internal/types"
)

type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Tasks     *handlers.TaskHandler
	Holidays  *handlers.HolidayHandler
	Catalog   *handlers.CatalogHandler
}

func NewRouter(verifier *auth.Verifier, h Handlers) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api", middleware.AuthMiddleware(verifier))
	{
		api.GET("/dashboard/summary", h.Dashboard.GetSummary)

		api.GET("/holidays", h.Holidays.GetHolidays)

		tasks := api.Group("/tasks")
		{
			tasks.POST("", h.Tasks.CreateTask)
			tasks.GET("", h.Tasks.GetTasksByRange)
			tasks.GET("/today", h.Tasks.GetTodayTasks)
		}

		api.POST("/tags", h.Catalog.CreateTag)
		api.GET("/tags", h.Catalog.ListTags)
		api.POST("/categories", h.Catalog.CreateCategory)
		api.GET("/categories", h.Catalog.ListCategories)
	}

	return r
}

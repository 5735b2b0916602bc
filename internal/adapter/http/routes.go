package http

import (
	"github.com/gin-gonic/gin"

	"github.com/seungyeah/tootodo-be/internal/adapter/http/handlers"
	"github.com/seungyeah/tootodo-be/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, propertyHandler *handlers.PropertyHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	authed := api.Group("")
	authed.Use(middleware.IdentityMiddleware())
	{
		authed.GET("/tasks", taskHandler.ListRootTasks)
		authed.POST("/tasks", taskHandler.CreateTask)
		authed.GET("/tasks/:id", taskHandler.GetTask)
		authed.PATCH("/tasks/:id", taskHandler.UpdateTask)
		authed.DELETE("/tasks/:id", taskHandler.DeleteTask)

		authed.POST("/tasks/:id/properties", propertyHandler.CreateProperty)
		authed.PATCH("/properties/:id", propertyHandler.UpdateProperty)
		authed.DELETE("/properties/:id", propertyHandler.DeleteProperty)
	}
}

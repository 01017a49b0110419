package routes

import (
	"github.com/gin-gonic/gin"

	activityhandlers "dunner/internal/interfaces/http/handlers/activity"
	"dunner/internal/interfaces/http/middleware"
)

type ActivityRouteConfig struct {
	ActivityHandler *activityhandlers.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupActivityRoutes(engine *gin.Engine, config *ActivityRouteConfig) {
	activities := engine.Group("/activities")
	activities.Use(config.AuthMiddleware.RequireAuth())
	{
		activities.GET("",
			config.ActivityHandler.ListActivities)
	}
}

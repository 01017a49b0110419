package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "dunner/internal/interfaces/http/handlers/ticket"
	"dunner/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("/resolve",
			config.TicketHandler.ResolveAssignment)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/merge",
			config.TicketHandler.MergeInvoices)
		// Using PATCH for state changes as per RESTful best practices
		tickets.PATCH("/:id/status",
			config.TicketHandler.ChangeStatus)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
	}
}

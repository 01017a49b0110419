package routes

import (
	"github.com/gin-gonic/gin"

	invoicehandlers "dunner/internal/interfaces/http/handlers/invoice"
	"dunner/internal/interfaces/http/middleware"
)

type InvoiceRouteConfig struct {
	InvoiceHandler *invoicehandlers.InvoiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupInvoiceRoutes(engine *gin.Engine, config *InvoiceRouteConfig) {
	invoices := engine.Group("/invoices")
	invoices.Use(config.AuthMiddleware.RequireAuth())
	{
		invoices.GET("",
			config.InvoiceHandler.ListInvoices)

		// Batch endpoints use a /batch prefix so they never collide with :ref
		invoices.POST("/batch/color",
			config.InvoiceHandler.BatchSetColor)
		invoices.POST("/batch/notes",
			config.InvoiceHandler.BatchNote)

		invoices.PUT("/:ref/color",
			config.InvoiceHandler.SetColor)
	}
}

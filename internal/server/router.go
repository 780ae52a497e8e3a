package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tallerbv/taller-backend/internal/handlers"
	"github.com/tallerbv/taller-backend/internal/middleware"
)

type RouterConfig struct {
	RequestLogMiddleware *middleware.RequestLogMiddleware
	AdminHandler         *handlers.AdminHandler
	ReportHandler        *handlers.ReportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	if cfg.RequestLogMiddleware != nil {
		router.Use(cfg.RequestLogMiddleware.Log())
	}

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Back-office CRUD
		api.GET("/admin", cfg.AdminHandler.ListResources)
		api.GET("/admin/:resource", cfg.AdminHandler.List)
		api.POST("/admin/:resource", cfg.AdminHandler.Create)
		api.GET("/admin/:resource/:id", cfg.AdminHandler.Get)
		api.PUT("/admin/:resource/:id", cfg.AdminHandler.Update)
		api.DELETE("/admin/:resource/:id", cfg.AdminHandler.Delete)

		// Letterhead documents
		api.GET("/reports/workorders/:id/pdf", cfg.ReportHandler.ExportWorkOrder)
		api.GET("/reports/invoices/:id/pdf", cfg.ReportHandler.ExportInvoice)
	}

	return router
}

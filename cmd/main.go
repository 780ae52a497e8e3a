package main

import (
	"fmt"
	"os"

	"github.com/tallerbv/taller-backend/internal/admin"
	"github.com/tallerbv/taller-backend/internal/db"
	"github.com/tallerbv/taller-backend/internal/handlers"
	"github.com/tallerbv/taller-backend/internal/logger"
	"github.com/tallerbv/taller-backend/internal/middleware"
	"github.com/tallerbv/taller-backend/internal/report"
	"github.com/tallerbv/taller-backend/internal/repos"
	"github.com/tallerbv/taller-backend/internal/server"
	"github.com/tallerbv/taller-backend/internal/services"
	"github.com/tallerbv/taller-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	assetDir := utils.GetEnv("ASSET_DIR", "assets", log)
	profilePath := utils.GetEnv("SHOP_PROFILE_PATH", "", log)
	fontFamily := utils.GetEnv("REPORT_FONT_FAMILY", "Calibri", log)
	fontRegular := utils.GetEnv("REPORT_FONT_REGULAR", "fonts/Calibri.ttf", log)
	fontBold := utils.GetEnv("REPORT_FONT_BOLD", "fonts/CalibriB.ttf", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Shop profile
	profile, err := report.LoadProfile(profilePath)
	if err != nil {
		log.Warn("Shop profile load failed, using defaults", "error", err)
	}
	reportCfg := report.Config{
		AssetDir:    assetDir,
		FontFamily:  fontFamily,
		FontRegular: fontRegular,
		FontBold:    fontBold,
	}

	// Repos
	log.Info("Setting up Repos from main...")
	workOrderRepo := repos.NewWorkOrderRepo(thePG, log)
	invoiceRepo := repos.NewInvoiceRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	adminService := services.NewAdminService(thePG, log, admin.DefaultRegistry())
	reportService := services.NewReportService(thePG, log, workOrderRepo, invoiceRepo, reportCfg, profile)

	// Handlers
	log.Info("Setting up handlers from main...")
	adminHandler := handlers.NewAdminHandler(log, adminService)
	reportHandler := handlers.NewReportHandler(log, reportService)

	// Middleware
	log.Info("Setting up middleware from main...")
	requestLog := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		RequestLogMiddleware: requestLog,
		AdminHandler:         adminHandler,
		ReportHandler:        reportHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}

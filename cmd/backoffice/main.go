package main

import (
	"fmt"
	"os"

	"github.com/imobops/backoffice/internal/auth"
	"github.com/imobops/backoffice/internal/config"
	"github.com/imobops/backoffice/internal/db"
	"github.com/imobops/backoffice/internal/excel"
	httphandler "github.com/imobops/backoffice/internal/http"
	"github.com/imobops/backoffice/internal/http/middleware"
	"github.com/imobops/backoffice/internal/logger"
	"github.com/imobops/backoffice/internal/pdf"
	"github.com/imobops/backoffice/internal/repository"
	"github.com/imobops/backoffice/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	salesRepo := repository.NewSalesRepository(database)
	receivablesRepo := repository.NewReceivablesRepository(database)
	purchasesRepo := repository.NewPurchasesRepository(database)
	planningRepo := repository.NewPlanningRepository(database)

	excelGenerator := excel.NewGenerator()
	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	dashboardService := service.NewDashboardService(
		salesRepo,
		receivablesRepo,
		purchasesRepo,
		planningRepo,
		excelGenerator,
		pdfGenerator,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(dashboardService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting backoffice service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nepem-ufsc/nepemcert/internal/config"
	"github.com/nepem-ufsc/nepemcert/internal/database"
	"github.com/nepem-ufsc/nepemcert/internal/handler"
	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/render"
	"github.com/nepem-ufsc/nepemcert/internal/repository"
	"github.com/nepem-ufsc/nepemcert/internal/service"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.App.Env)
	defer logger.Sync()

	// ── Database ─────────────────────────────────────────
	db := database.Connect(cfg.Paths.DBPath)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	// ── Repositories ─────────────────────────────────────
	codeRepo := repository.NewCodeRepository(db)
	themeRepo, err := repository.NewThemeRepository(cfg.Paths.ThemesDir, model.PredefinedThemes())
	if err != nil {
		logger.Fatal("Failed to open themes directory", zap.Error(err))
	}
	templateRepo, err := repository.NewTemplateRepository(cfg.Paths.TemplatesDir)
	if err != nil {
		logger.Fatal("Failed to open templates directory", zap.Error(err))
	}
	placeholderRepo := repository.NewPlaceholderRepository(cfg.Paths.ParametersFile)

	// ── Renderer ─────────────────────────────────────────
	renderer, err := render.NewChromeRenderer(cfg.Render.ChromeBin, cfg.Render.Workers, logger)
	if err != nil {
		logger.Fatal("Failed to start document renderer", zap.Error(err))
	}
	defer renderer.Close()

	// ── Services ─────────────────────────────────────────
	placeholderSvc, err := service.NewPlaceholderService(placeholderRepo, themeRepo)
	if err != nil {
		logger.Fatal("Failed to load placeholder parameters", zap.Error(err))
	}
	templateSvc := service.NewTemplateService(templateRepo, service.NewEngine(cfg.Template.Engine))
	themeSvc := service.NewThemeService(themeRepo)
	codeSvc := service.NewCodeService(codeRepo, cfg.Verify.BaseURL, cfg.Verify.Salt, cfg.Verify.QRSize, logger)
	generationSvc := service.NewGenerationService(
		placeholderSvc, templateSvc, themeSvc, codeSvc, renderer, cfg.Paths.OutputDir, logger)

	// ── Handlers ─────────────────────────────────────────
	router := handler.NewRouter(
		handler.NewGenerationHandler(generationSvc),
		handler.NewVerificationHandler(codeSvc),
		handler.NewTemplateHandler(templateSvc),
		handler.NewThemeHandler(themeSvc),
		handler.NewPlaceholderHandler(placeholderSvc),
	)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
		// Geração em lote pode levar minutos; timeout de escrita generoso
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Servidor iniciado",
			zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

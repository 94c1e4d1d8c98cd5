package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rrdesigns-backend/config"
	_ "rrdesigns-backend/docs" // Important for Swagger
	v1 "rrdesigns-backend/internal/delivery/http/v1"
	"rrdesigns-backend/internal/repository/memory"
	"rrdesigns-backend/internal/usecase"
	"rrdesigns-backend/pkg/email"
	"rrdesigns-backend/pkg/logger"
	"rrdesigns-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           RR Designs Studio API
// @version         1.0
// @description     Lead-capture mail relay and portfolio content API for the RR Designs website.
// @host            localhost:3001
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.GinMode)
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Log.Info("Starting RR Designs backend", "port", cfg.Port)

	// 3. Setup Email Service
	if !cfg.SMTPConfigured() {
		logger.Log.Warn("SMTP credentials are missing - form submissions will fail to send")
	}
	mailer := email.NewSMTPSender(cfg)

	// 4. Setup Repositories (in-memory, reset on restart)
	galleryRepo := memory.NewGalleryRepository(memory.DefaultGallery())
	projectRepo := memory.NewProjectRepository(memory.DefaultProjects())
	adminStore := memory.NewAdminCredentialStore(cfg.AdminPassword)

	// 5. Setup UseCases
	validate := validation.New()
	submissionUC := usecase.NewSubmissionUsecase(mailer, validate, usecase.MailSettings{
		StudioName:     cfg.StudioName,
		FromAddress:    cfg.SMTPUser,
		ReceivingEmail: cfg.ReceivingEmail,
	})
	contentUC := usecase.NewContentUsecase(galleryRepo, projectRepo, validate)
	adminUC := usecase.NewAdminUsecase(adminStore)
	healthUC := usecase.NewHealthUsecase()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		ContentUC:    contentUC,
		AdminUC:      adminUC,
		HealthUC:     healthUC,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Log.Info("Server listening", "health", "http://localhost:"+cfg.Port+"/api/health")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

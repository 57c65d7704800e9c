package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alumni-connect-backend/config"
	_ "alumni-connect-backend/docs" // Important for Swagger
	v1 "alumni-connect-backend/internal/delivery/http/v1"
	"alumni-connect-backend/internal/repository/postgres"
	"alumni-connect-backend/internal/usecase"
	"alumni-connect-backend/pkg/auth"
	"alumni-connect-backend/pkg/database"
	"alumni-connect-backend/pkg/email"
	"alumni-connect-backend/pkg/logger"
	"alumni-connect-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Alumni Connect API
// @version         1.0
// @description     Backend for the alumni networking platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting alumni connect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	postingRepo := postgres.NewPostingRepository(dbPool)
	eventRepo := postgres.NewEventRepository(dbPool)
	mentorshipRepo := postgres.NewMentorshipRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(email.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.SMTPFromEmail,
	})
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - mentor notifications will be skipped")
	}

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	postingUC := usecase.NewPostingUsecase(postingRepo)
	eventUC := usecase.NewEventUsecase(eventRepo)
	mentorshipUC := usecase.NewMentorshipUsecase(mentorshipRepo, profileRepo, userRepo, emailService)
	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, postingRepo, eventRepo, cfg.RecommendationDefaultLimit)

	// 8. Setup Auth Provider (JWKS)
	// Assuming Supabase URL is like https://xyz.supabase.co
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		ProfileUC:        profileUC,
		PostingUC:        postingUC,
		EventUC:          eventUC,
		MentorshipUC:     mentorshipUC,
		RecommendationUC: recommendationUC,
		JWKSProvider:     jwksProvider,
		Config:           cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

package v1

import (
	"net/http"
	"time"

	"alumni-connect-backend/config"
	"alumni-connect-backend/internal/delivery/http/middleware"
	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	ProfileUC        domain.ProfileUsecase
	PostingUC        domain.PostingUsecase
	EventUC          domain.EventUsecase
	MentorshipUC     domain.MentorshipUsecase
	RecommendationUC domain.RecommendationUsecase
	JWKSProvider     *auth.Provider
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	}))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewPostingHandler(protected, deps.PostingUC)
		NewEventHandler(protected, deps.EventUC)
		NewMentorshipHandler(protected, deps.MentorshipUC)
		NewRecommendationHandler(protected, deps.RecommendationUC, deps.Config.RecommendationDefaultLimit)
	}

	return r
}

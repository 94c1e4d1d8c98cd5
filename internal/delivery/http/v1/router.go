package v1

import (
	"net/http"

	"rrdesigns-backend/internal/delivery/http/middleware"
	"rrdesigns-backend/internal/delivery/http/response"
	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/internal/usecase"
	"rrdesigns-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	ContentUC    domain.ContentUsecase
	AdminUC      domain.AdminUsecase
	HealthUC     usecase.HealthUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	api := r.Group("/api")

	// Health Check, no SMTP involvement
	api.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:  status["status"],
			Message: status["message"],
		})
	})

	// Public routes
	NewSubmissionHandler(api, deps.SubmissionUC) // Lead-capture forms (no auth required)

	// Prometheus scrape endpoint
	api.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(deps.AdminUC))
	{
		NewContentHandler(api, admin, deps.ContentUC)
		NewAdminHandler(api, admin, deps.AdminUC)
	}

	return r
}

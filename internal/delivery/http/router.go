package http

import (
	"github.com/arotiapp/aroti-backend/internal/delivery/http/handler"
	"github.com/arotiapp/aroti-backend/internal/delivery/http/middleware"
	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	authHandler       *handler.AuthHandler
	onboardingHandler *handler.OnboardingHandler
	pointsHandler     *handler.PointsHandler
	accessHandler     *handler.AccessHandler
	insightHandler    *handler.InsightHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	onboardingHandler *handler.OnboardingHandler,
	pointsHandler *handler.PointsHandler,
	accessHandler *handler.AccessHandler,
	insightHandler *handler.InsightHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		onboardingHandler: onboardingHandler,
		pointsHandler:     pointsHandler,
		accessHandler:     accessHandler,
		insightHandler:    insightHandler,
		authMiddleware:    authMiddleware,
	}
}

// registerValidations adds the custom binding validators used by request
// structs, e.g. `binding:"screen"` for onboarding screen names.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("screen", func(fl validator.FieldLevel) bool {
		return domain.ScreenIndex(domain.ScreenID(fl.Field().String())) >= 0
	})
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.PUT("/premium", r.authMiddleware.RequireAuth(), r.authHandler.SetPremium)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Onboarding routes
			onboarding := protected.Group("/onboarding")
			{
				onboarding.GET("/state", r.onboardingHandler.GetState)
				onboarding.POST("/answer", r.onboardingHandler.Answer)
				onboarding.POST("/advance", r.onboardingHandler.Advance)
				onboarding.POST("/back", r.onboardingHandler.Back)
				onboarding.POST("/complete", r.onboardingHandler.Complete)
			}

			// Points routes
			points := protected.Group("/points")
			{
				points.GET("/balance", r.pointsHandler.Balance)
				points.POST("/earn", r.pointsHandler.Earn)
				points.POST("/spend", r.pointsHandler.Spend)
				points.GET("/level", r.pointsHandler.Level)
				points.GET("/transactions", r.pointsHandler.Transactions)
			}

			// Access routes
			access := protected.Group("/access")
			{
				access.GET("/unlocks", r.accessHandler.Unlocks)
				access.POST("/unlock", r.accessHandler.Unlock)
				access.POST("/usage", r.accessHandler.RecordUsage)
				access.GET("/:content_type/:content_id", r.accessHandler.Resolve)
			}

			// Daily insight
			protected.GET("/daily-insight", r.insightHandler.GetDaily)
		}
	}

	return router
}

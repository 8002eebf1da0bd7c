package container

import (
	"fmt"
	"time"

	"github.com/arotiapp/aroti-backend/internal/config"
	deliveryhttp "github.com/arotiapp/aroti-backend/internal/delivery/http"
	"github.com/arotiapp/aroti-backend/internal/delivery/http/handler"
	"github.com/arotiapp/aroti-backend/internal/delivery/http/middleware"
	"github.com/arotiapp/aroti-backend/internal/infrastructure/database"
	"github.com/arotiapp/aroti-backend/internal/infrastructure/gemini"
	"github.com/arotiapp/aroti-backend/internal/infrastructure/server"
	"github.com/arotiapp/aroti-backend/internal/repository/postgres"
	redisrepo "github.com/arotiapp/aroti-backend/internal/repository/redis"
	"github.com/arotiapp/aroti-backend/internal/usecase/access"
	"github.com/arotiapp/aroti-backend/internal/usecase/auth"
	"github.com/arotiapp/aroti-backend/internal/usecase/insight"
	"github.com/arotiapp/aroti-backend/internal/usecase/onboarding"
	"github.com/arotiapp/aroti-backend/internal/usecase/points"
	"github.com/arotiapp/aroti-backend/pkg/clock"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini Client
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		// Don't fail, just continue without AI features
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	onboardingRepo := postgres.NewOnboardingRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	pointsRepo := postgres.NewPointsRepository(db)
	unlockRepo := postgres.NewUnlockRepository(db)
	usageRepo := redisrepo.NewUsageRepository(redisClient)
	insightCache := redisrepo.NewInsightCache(redisClient)

	systemClock := clock.System()

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		onboardingRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	onboardingUseCase := onboarding.NewOnboardingUseCase(
		onboardingRepo,
		profileRepo,
		geminiClient,
	)

	pointsUseCase := points.NewPointsUseCase(pointsRepo)

	accessUseCase := access.NewAccessUseCase(
		access.DefaultRuleSet(),
		userRepo,
		unlockRepo,
		usageRepo,
		pointsUseCase,
		systemClock,
	)

	insightUseCase := insight.NewInsightUseCase(
		insightCache,
		geminiClient,
		systemClock,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	onboardingHandler := handler.NewOnboardingHandler(onboardingUseCase)
	pointsHandler := handler.NewPointsHandler(pointsUseCase)
	accessHandler := handler.NewAccessHandler(accessUseCase)
	insightHandler := handler.NewInsightHandler(insightUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := deliveryhttp.NewRouter(
		authHandler,
		onboardingHandler,
		pointsHandler,
		accessHandler,
		insightHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

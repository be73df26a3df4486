package routes

import (
	"net/http"

	"schoolpay-backend/internal/api/handlers"
	"schoolpay-backend/internal/api/middleware"
	"schoolpay-backend/internal/auth"
	"schoolpay-backend/internal/config"
	"schoolpay-backend/internal/repository"
	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes configures the middleware chain and the canonical route table.
// Earlier iterations of this API registered /api/users and /api/support twice;
// there is exactly one handler per route here.
func SetupRoutes(db *mongo.Database, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware chain, fixed order for all routes
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.NewRateLimiter(cfg.RateLimitWindow(), cfg.RateLimitMax).Middleware())

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validate)
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, validate)
	feeService := service.NewFeeService(feeRepo, validate)
	transactionService := service.NewTransactionService(transactionRepo, validate)
	supportService := service.NewSupportService(supportRepo, validate)
	messageService := service.NewMessageService(messageRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	feeHandler := handlers.NewFeeHandler(feeService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	supportHandler := handlers.NewSupportHandler(supportService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Optional bearer-token verification for the API group
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		logrus.Warnf("Failed to load auth config, continuing without auth: %v", err)
		authConfig = nil
	}

	api := router.Group("/api")

	if authConfig != nil && authConfig.Enabled {
		authService, err := auth.NewService(authConfig)
		if err != nil {
			logrus.Warnf("Failed to initialize auth service, continuing without auth: %v", err)
		} else {
			api.Use(auth.NewMiddleware(authService).RequireAuth())
		}
	}

	{
		api.POST("/users", userHandler.CreateUser)
		api.GET("/user/:id", userHandler.GetUser)
		api.GET("/contacts/:uid", userHandler.GetContacts)

		api.POST("/org", organizationHandler.ActivateOrganization)

		api.POST("/fees", feeHandler.CreateFee)
		api.GET("/fees", feeHandler.ListFees)
		api.PUT("/fees/:id", feeHandler.UpdateFee)
		api.DELETE("/fees/:id", feeHandler.DeleteFee)

		api.POST("/transactions", transactionHandler.CreateTransaction)
		api.POST("/support", supportHandler.SubmitComplaint)
		api.POST("/message", messageHandler.CreateMessage)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

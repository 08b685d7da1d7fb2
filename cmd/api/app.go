package main

import (
	"net/http"
	"os"

	"estatehub/internal/handlers"
	"estatehub/internal/middleware"
	"estatehub/internal/repositories"
	"estatehub/internal/services"
	"estatehub/internal/transformers"
	"estatehub/internal/validators"
	"estatehub/pkg/cache"
	"estatehub/pkg/config"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"
	"estatehub/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App wires configuration, infrastructure, handlers and the router together.
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	AuthHandler     *handlers.AuthHandler
	PropertyHandler *handlers.PropertyHandler
	MessageHandler  *handlers.MessageHandler
	PaymentHandler  *handlers.PaymentHandler
	AdminHandler    *handlers.AdminHandler
	SystemHandler   *handlers.SystemHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	userRepo := repositories.NewUserRepository(database.DB)
	propertyRepo := repositories.NewPropertyRepository(database.DB)
	propertyCache := repositories.NewPropertyCache()
	messageRepo := repositories.NewMessageRepository(database.DB)
	paymentRepo := repositories.NewPaymentRepository(database.DB)

	// transformers
	userTrans := transformers.NewUserTransformer()
	propTrans := transformers.NewPropertyTransformer()

	// validators
	userValidator := validators.NewUserValidator()
	propertyValidator := validators.NewPropertyValidator()
	messageValidator := validators.NewMessageValidator()
	paymentValidator := validators.NewPaymentValidator()

	// services
	userService := services.NewUserService(userRepo, userValidator, userTrans, a.Config.JWT.Secret)
	propertyService := services.NewPropertyService(propertyRepo, userRepo, propertyCache, propTrans, propertyValidator)
	messageService := services.NewMessageService(messageRepo, userRepo, propertyRepo, messageValidator)
	paymentService := services.NewPaymentService(paymentRepo, userRepo, propertyRepo, paymentValidator)
	adminService := services.NewAdminService(userRepo, userValidator)

	// handlers
	a.AuthHandler = handlers.NewAuthHandler(userService)
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.MessageHandler = handlers.NewMessageHandler(messageService)
	a.PaymentHandler = handlers.NewPaymentHandler(paymentService)
	a.AdminHandler = handlers.NewAdminHandler(adminService)
	a.SystemHandler = handlers.NewSystemHandler(database.NewMongoDatabase(database.DB))
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}

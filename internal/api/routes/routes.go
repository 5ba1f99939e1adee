package routes

import (
	"lab-inventory-backend/internal/api/handlers"
	"lab-inventory-backend/internal/api/middleware"
	"lab-inventory-backend/internal/auth"
	"lab-inventory-backend/internal/config"
	"lab-inventory-backend/internal/repository"
	"lab-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	componentRepo := repository.NewComponentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	inventoryService := service.NewInventoryService(componentRepo, transactionRepo, txManager, validator)
	transactionService := service.NewTransactionService(transactionRepo, componentRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	// Health check routes
	router.GET("/", healthHandler.Health)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Catalog and ledger reads
	router.GET("/items", inventoryHandler.ListItems)
	router.GET("/items/:name", inventoryHandler.GetItem)
	router.GET("/items/:name/transactions", transactionHandler.ListComponentTransactions)
	router.GET("/transactions", transactionHandler.ListTransactions)

	// Mutating routes, behind token verification when a secret is configured
	mutating := router.Group("/")
	if cfg.AuthJWTSecret != "" {
		authMiddleware := auth.NewAuthMiddleware(cfg.AuthJWTSecret)
		mutating.Use(authMiddleware.RequireAuth())
	}
	mutating.POST("/borrow", inventoryHandler.Borrow)
	mutating.POST("/return", inventoryHandler.Return)
	mutating.POST("/transactions", transactionHandler.RecordTransaction)

	return router
}

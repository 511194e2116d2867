package routes

import (
	"franchise-backend/internal/api/handlers"
	"franchise-backend/internal/api/middleware"
	"franchise-backend/internal/config"
	"franchise-backend/internal/repository"
	"franchise-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the services the API is served from
type Services struct {
	Franchises service.FranchiseServiceInterface
	Branches   service.BranchServiceInterface
	Products   service.ProductServiceInterface
}

// NewServices builds the services on top of one unit of work over db
func NewServices(db *gorm.DB) *Services {
	uow := repository.NewUnitOfWork(db)
	validator := service.NewValidator()

	return &Services{
		Franchises: service.NewFranchiseService(uow, validator),
		Branches:   service.NewBranchService(uow, validator),
		Products:   service.NewProductService(uow, validator),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	services := NewServices(db)

	healthHandler := handlers.NewHealthHandler(db)
	franchiseHandler := handlers.NewFranchiseHandler(services.Franchises)
	branchHandler := handlers.NewBranchHandler(services.Branches)
	productHandler := handlers.NewProductHandler(services.Products)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		franchises := v1.Group("/franchises")
		{
			franchises.GET("", franchiseHandler.ListFranchises)
			franchises.POST("", franchiseHandler.CreateFranchise)
			franchises.GET("/:id", franchiseHandler.GetFranchise)
			franchises.PUT("/:id", franchiseHandler.RenameFranchise)
			franchises.DELETE("/:id", franchiseHandler.DeleteFranchise)
			franchises.GET("/:id/branches", branchHandler.ListBranchesByFranchise)
			franchises.GET("/:id/top-stock-products", franchiseHandler.GetTopStockProducts)
		}

		branches := v1.Group("/branches")
		{
			branches.GET("", branchHandler.ListBranches)
			branches.POST("", branchHandler.CreateBranch)
			branches.GET("/:id", branchHandler.GetBranch)
			branches.PUT("/:id/name", branchHandler.RenameBranch)
			branches.DELETE("/:id", branchHandler.DeleteBranch)
			branches.GET("/:id/products", productHandler.ListProductsByBranch)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id/stock", productHandler.UpdateProductStock)
			products.PUT("/:id/name", productHandler.RenameProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

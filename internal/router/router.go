// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelftrack/shelftrack-backend/internal/config"
	"github.com/shelftrack/shelftrack-backend/internal/handlers"
	"github.com/shelftrack/shelftrack-backend/internal/middleware"
	"github.com/shelftrack/shelftrack-backend/internal/services"
	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	storeService := services.NewStoreService(db)
	inventoryService := services.NewInventoryService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	storeHandler := handlers.NewStoreHandler(storeService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/barcode/:barcode", productHandler.GetProductByBarcode)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Store routes
		stores := v1.Group("/stores")
		{
			stores.GET("", storeHandler.GetStores)
			stores.GET("/:id", storeHandler.GetStore)

			protected := stores.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", storeHandler.CreateStore)
				protected.DELETE("/:id", storeHandler.DeleteStore)
			}
		}

		// Inventory routes
		inventories := v1.Group("/inventories")
		{
			inventories.GET("", inventoryHandler.GetInventories)
			inventories.GET("/:id", inventoryHandler.GetInventory)

			protected := inventories.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", inventoryHandler.CreateInventory)
				protected.PUT("/:id/quantity", inventoryHandler.SetQuantity)
				protected.DELETE("/:id", inventoryHandler.DeleteInventory)
			}
		}
	}

	return r
}

package main

import (
	"log"
	"order_entry/internal/config"
	"order_entry/internal/database"
	"order_entry/internal/handlers"
	"order_entry/internal/logger"
	"order_entry/internal/migrations"
	"order_entry/internal/redis"
	"order_entry/internal/repository"
	"order_entry/internal/services"
	"order_entry/pkg/erp"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Initialize(cfg.Environment)
	defer logger.Log.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed master data
	if err := migrations.SeedMasterData(db); err != nil {
		log.Printf("Warning: Failed to seed master data: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize ERP gateway client
	approvalClient := erp.NewClient(cfg.ApprovalAPIURL, cfg.ApprovalUsername, cfg.ApprovalPassword)

	// Initialize repositories
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	masterDataRepo := repository.NewMasterDataRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	masterDataService := services.NewMasterDataService(masterDataRepo, redisClient, cacheTTL)
	salesOrderService := services.NewSalesOrderService(salesOrderRepo, approvalClient)

	// Initialize handlers
	masterDataHandler := handlers.NewMasterDataHandler(masterDataService)
	salesOrderHandler := handlers.NewSalesOrderHandler(salesOrderService)
	orderFormHandler := handlers.NewOrderFormHandler()

	// Setup routes
	router := gin.Default()
	router.Use(logger.RequestLogger())

	api := router.Group("/api")
	{
		// Master data lookups
		masterdata := api.Group("/masterdata")
		{
			masterdata.GET("/customers", masterDataHandler.GetCustomers)
			masterdata.GET("/customers/:customer_id/incoterms", masterDataHandler.GetDefaultIncoterms)
			masterdata.GET("/incoterms", masterDataHandler.GetIncoterms)
			masterdata.GET("/uom", masterDataHandler.GetUnitsOfMeasure)
			masterdata.GET("/plants", masterDataHandler.GetPlants)
			masterdata.GET("/plants/:plant_code/storage-locations", masterDataHandler.GetStorageLocations)
			masterdata.GET("/materials", masterDataHandler.SearchMaterials)
			masterdata.GET("/materials/:material_id", masterDataHandler.LookupMaterial)
		}

		// Stateless order form operations
		orderform := api.Group("/order-form")
		{
			orderform.GET("/new", orderFormHandler.NewForm)
			orderform.POST("/validate", orderFormHandler.Validate)
			orderform.POST("/line-items", orderFormHandler.AddLineItem)
			orderform.POST("/line-items/remove", orderFormHandler.RemoveLineItem)
			orderform.POST("/attachments", orderFormHandler.AddAttachments)
			orderform.POST("/attachments/remove", orderFormHandler.RemoveAttachment)
		}

		// Sales orders
		api.POST("/sales-orders", salesOrderHandler.Create)
		api.GET("/sales-orders", salesOrderHandler.List)
		api.GET("/sales-orders/:id", salesOrderHandler.GetByID)
		api.DELETE("/sales-orders/:id", salesOrderHandler.Delete)
		api.POST("/sales-orders/submit", salesOrderHandler.Submit)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

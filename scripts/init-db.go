package main

import (
	"fmt"
	"log"
	"order_entry/internal/config"
	"order_entry/internal/database"
	"order_entry/internal/migrations"
	"order_entry/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Customer{},
		&models.Incoterm{},
		&models.UnitOfMeasure{},
		&models.Plant{},
		&models.StorageLocation{},
		&models.Material{},
		&models.SalesOrder{},
		&models.SalesOrderItem{},
		&models.SalesOrderAttachment{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables and seed master data
	fmt.Println("Creating tables...")
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialized successfully!")
}

package migrations

import (
	"log"
	"order_entry/internal/models"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the master data tables.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
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
		return err
	}

	// Seed master data
	err = SeedMasterData(db)
	if err != nil {
		log.Printf("Warning: Failed to seed master data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// SeedMasterData loads the master data used by the order form. Existing
// tables are left untouched so reseeding is safe.
func SeedMasterData(db *gorm.DB) error {
	log.Println("Seeding master data...")

	var customerCount int64
	if err := db.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		return err
	}
	if customerCount > 0 {
		log.Println("Master data already seeded")
		return nil
	}

	customers := []models.Customer{
		{CustomerID: "CUST001", CustomerName: "ABC Corporation", DefaultIncoterms: "FOB"},
		{CustomerID: "CUST002", CustomerName: "XYZ Industries", DefaultIncoterms: "CIF"},
		{CustomerID: "CUST003", CustomerName: "Global Solutions Ltd", DefaultIncoterms: "DDP"},
		{CustomerID: "CUST004", CustomerName: "Tech Innovations Inc", DefaultIncoterms: "EXW"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	incoterms := []models.Incoterm{
		{Code: "FOB", Description: "Free on Board"},
		{Code: "CIF", Description: "Cost, Insurance & Freight"},
		{Code: "EXW", Description: "Ex Works"},
		{Code: "DDP", Description: "Delivered Duty Paid"},
		{Code: "CPT", Description: "Carriage Paid To"},
	}
	if err := db.Create(&incoterms).Error; err != nil {
		return err
	}

	uoms := []models.UnitOfMeasure{
		{Code: "EA", Description: "Each"},
		{Code: "PC", Description: "Piece"},
		{Code: "SET", Description: "Set"},
		{Code: "KG", Description: "Kilogram"},
		{Code: "LB", Description: "Pound"},
	}
	if err := db.Create(&uoms).Error; err != nil {
		return err
	}

	plants := []models.Plant{
		{PlantCode: "1000", PlantName: "Plant Hamburg"},
		{PlantCode: "1200", PlantName: "Plant Berlin"},
		{PlantCode: "1400", PlantName: "Plant Munich"},
		{PlantCode: "2000", PlantName: "Plant New York"},
	}
	if err := db.Create(&plants).Error; err != nil {
		return err
	}

	storageLocations := []models.StorageLocation{
		{PlantCode: "1000", LocationCode: "0001", LocationName: "Raw Materials"},
		{PlantCode: "1000", LocationCode: "0002", LocationName: "Finished Goods"},
		{PlantCode: "1200", LocationCode: "0001", LocationName: "Main Storage"},
		{PlantCode: "1200", LocationCode: "0003", LocationName: "Quality Control"},
	}
	if err := db.Create(&storageLocations).Error; err != nil {
		return err
	}

	materials := []models.Material{
		{MaterialID: "MAT001", MaterialDescription: "Laptop Computer Dell XPS 13", UnitPrice: 1299.99, BaseUoM: "EA", AvailableQuantity: 150},
		{MaterialID: "MAT002", MaterialDescription: "Monitor 27 inch 4K", UnitPrice: 599.99, BaseUoM: "EA", AvailableQuantity: 75},
		{MaterialID: "MAT003", MaterialDescription: "Wireless Mouse Logitech MX", UnitPrice: 89.99, BaseUoM: "EA", AvailableQuantity: 25},
		{MaterialID: "MAT004", MaterialDescription: "Mechanical Keyboard RGB", UnitPrice: 159.99, BaseUoM: "EA", AvailableQuantity: 0},
	}
	if err := db.Create(&materials).Error; err != nil {
		return err
	}

	log.Println("Master data seeded successfully!")
	return nil
}

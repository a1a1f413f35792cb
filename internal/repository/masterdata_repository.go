package repository

import (
	"strings"

	"order_entry/internal/models"

	"gorm.io/gorm"
)

type MasterDataRepository interface {
	GetCustomers() ([]models.Customer, error)
	GetCustomerByID(customerID string) (*models.Customer, error)
	GetIncoterms() ([]models.Incoterm, error)
	GetUnitsOfMeasure() ([]models.UnitOfMeasure, error)
	GetPlants() ([]models.Plant, error)
	GetStorageLocations(plantCode string) ([]models.StorageLocation, error)
	GetMaterialByID(materialID string) (*models.Material, error)
	SearchMaterials(query string) ([]models.Material, error)
}

type masterDataRepository struct {
	db *gorm.DB
}

func NewMasterDataRepository(db *gorm.DB) MasterDataRepository {
	return &masterDataRepository{db: db}
}

func (r *masterDataRepository) GetCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("customer_id").Find(&customers).Error
	return customers, err
}

func (r *masterDataRepository) GetCustomerByID(customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("customer_id = ?", customerID).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *masterDataRepository) GetIncoterms() ([]models.Incoterm, error) {
	var incoterms []models.Incoterm
	err := r.db.Order("id").Find(&incoterms).Error
	return incoterms, err
}

func (r *masterDataRepository) GetUnitsOfMeasure() ([]models.UnitOfMeasure, error) {
	var uoms []models.UnitOfMeasure
	err := r.db.Order("id").Find(&uoms).Error
	return uoms, err
}

func (r *masterDataRepository) GetPlants() ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.Order("plant_code").Find(&plants).Error
	return plants, err
}

func (r *masterDataRepository) GetStorageLocations(plantCode string) ([]models.StorageLocation, error) {
	var locations []models.StorageLocation
	err := r.db.Where("plant_code = ?", plantCode).Order("location_code").Find(&locations).Error
	return locations, err
}

func (r *masterDataRepository) GetMaterialByID(materialID string) (*models.Material, error) {
	var material models.Material
	err := r.db.Where("material_id = ?", materialID).First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *masterDataRepository) SearchMaterials(query string) ([]models.Material, error) {
	var materials []models.Material
	db := r.db.Order("material_id")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(material_id) LIKE ? OR LOWER(material_description) LIKE ?", pattern, pattern)
	}
	err := db.Find(&materials).Error
	return materials, err
}

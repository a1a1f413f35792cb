package services

import (
	"errors"
	"fmt"
	"order_entry/internal/models"
	"order_entry/internal/orderform"
	"order_entry/internal/redis"
	"order_entry/internal/repository"
	"time"

	"gorm.io/gorm"
)

// FallbackIncoterms is used when a customer has no default incoterms on file.
const FallbackIncoterms = "FOB"

// limitedStockThreshold separates "Limited" from "Available".
const limitedStockThreshold = 50

// MaterialLookup is the resolved view of one material, including its
// availability classification for the order form.
type MaterialLookup struct {
	MaterialID          string               `json:"material_id"`
	MaterialDescription string               `json:"material_description"`
	UnitPrice           float64              `json:"unit_price"`
	BaseUoM             string               `json:"base_uom"`
	AvailableQuantity   int                  `json:"available_quantity"`
	Availability        string               `json:"availability"`
	AvailabilityState   orderform.ValueState `json:"availability_state"`
	AvailabilityText    string               `json:"availability_text"`
	Found               bool                 `json:"found"`
}

type MasterDataService interface {
	GetCustomers() ([]models.Customer, error)
	GetDefaultIncoterms(customerID string) (string, error)
	GetIncoterms() ([]models.Incoterm, error)
	GetUnitsOfMeasure() ([]models.UnitOfMeasure, error)
	GetPlants() ([]models.Plant, error)
	GetStorageLocations(plantCode string) ([]models.StorageLocation, error)
	LookupMaterial(materialID string) (*MaterialLookup, error)
	SearchMaterials(query string) ([]models.Material, error)
}

type masterDataService struct {
	repo     repository.MasterDataRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewMasterDataService(repo repository.MasterDataRepository, cache *redis.Client, cacheTTL time.Duration) MasterDataService {
	return &masterDataService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *masterDataService) GetCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if s.cacheGet("customers", &customers) {
		return customers, nil
	}

	customers, err := s.repo.GetCustomers()
	if err != nil {
		return nil, err
	}
	s.cacheSet("customers", customers)
	return customers, nil
}

// GetDefaultIncoterms returns the customer's default incoterms from the
// customer master, falling back to FOB for unknown customers.
func (s *masterDataService) GetDefaultIncoterms(customerID string) (string, error) {
	customer, err := s.repo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FallbackIncoterms, nil
		}
		return "", fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}
	if customer.DefaultIncoterms == "" {
		return FallbackIncoterms, nil
	}
	return customer.DefaultIncoterms, nil
}

func (s *masterDataService) GetIncoterms() ([]models.Incoterm, error) {
	var incoterms []models.Incoterm
	if s.cacheGet("incoterms", &incoterms) {
		return incoterms, nil
	}

	incoterms, err := s.repo.GetIncoterms()
	if err != nil {
		return nil, err
	}
	s.cacheSet("incoterms", incoterms)
	return incoterms, nil
}

func (s *masterDataService) GetUnitsOfMeasure() ([]models.UnitOfMeasure, error) {
	var uoms []models.UnitOfMeasure
	if s.cacheGet("uom", &uoms) {
		return uoms, nil
	}

	uoms, err := s.repo.GetUnitsOfMeasure()
	if err != nil {
		return nil, err
	}
	s.cacheSet("uom", uoms)
	return uoms, nil
}

func (s *masterDataService) GetPlants() ([]models.Plant, error) {
	var plants []models.Plant
	if s.cacheGet("plants", &plants) {
		return plants, nil
	}

	plants, err := s.repo.GetPlants()
	if err != nil {
		return nil, err
	}
	s.cacheSet("plants", plants)
	return plants, nil
}

func (s *masterDataService) GetStorageLocations(plantCode string) ([]models.StorageLocation, error) {
	key := "storage_locations:" + plantCode
	var locations []models.StorageLocation
	if s.cacheGet(key, &locations) {
		return locations, nil
	}

	locations, err := s.repo.GetStorageLocations(plantCode)
	if err != nil {
		return nil, err
	}
	s.cacheSet(key, locations)
	return locations, nil
}

// LookupMaterial resolves a material ID. Unknown materials are not an error:
// the form renders them as "Material not found" with a zero price.
func (s *masterDataService) LookupMaterial(materialID string) (*MaterialLookup, error) {
	if s.cache != nil {
		var cached MaterialLookup
		if err := s.cache.GetMaterial(materialID, &cached); err == nil {
			return &cached, nil
		}
	}

	material, err := s.repo.GetMaterialByID(materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &MaterialLookup{
				MaterialID:          materialID,
				MaterialDescription: "Material not found",
				AvailabilityState:   orderform.StateNone,
			}, nil
		}
		return nil, fmt.Errorf("failed to look up material %s: %w", materialID, err)
	}

	lookup := &MaterialLookup{
		MaterialID:          material.MaterialID,
		MaterialDescription: material.MaterialDescription,
		UnitPrice:           material.UnitPrice,
		BaseUoM:             material.BaseUoM,
		AvailableQuantity:   material.AvailableQuantity,
		Found:               true,
	}
	lookup.Availability, lookup.AvailabilityState = classifyAvailability(material.AvailableQuantity)
	lookup.AvailabilityText = fmt.Sprintf("%s (%d units)", lookup.Availability, material.AvailableQuantity)

	if s.cache != nil {
		s.cache.SetMaterial(materialID, lookup, s.cacheTTL)
	}
	return lookup, nil
}

func (s *masterDataService) SearchMaterials(query string) ([]models.Material, error) {
	return s.repo.SearchMaterials(query)
}

func classifyAvailability(quantity int) (string, orderform.ValueState) {
	switch {
	case quantity <= 0:
		return "Out of Stock", orderform.StateError
	case quantity < limitedStockThreshold:
		return "Limited", orderform.StateWarning
	default:
		return "Available", orderform.StateSuccess
	}
}

// cacheGet reports whether key was served from Redis. A nil cache or a cache
// error falls through to the repository.
func (s *masterDataService) cacheGet(key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.GetMasterData(key, dest) == nil
}

func (s *masterDataService) cacheSet(key string, value interface{}) {
	if s.cache == nil {
		return
	}
	s.cache.SetMasterData(key, value, s.cacheTTL)
}

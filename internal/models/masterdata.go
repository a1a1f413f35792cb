package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	CustomerID       string         `json:"customer_id" gorm:"unique;not null"`
	CustomerName     string         `json:"customer_name" gorm:"not null"`
	DefaultIncoterms string         `json:"default_incoterms"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Incoterm struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Code        string `json:"code" gorm:"unique;not null"`
	Description string `json:"description" gorm:"not null"`
}

type UnitOfMeasure struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Code        string `json:"code" gorm:"unique;not null"`
	Description string `json:"description" gorm:"not null"`
}

type Plant struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	PlantCode string `json:"plant_code" gorm:"unique;not null"`
	PlantName string `json:"plant_name" gorm:"not null"`
}

type StorageLocation struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	PlantCode    string `json:"plant_code" gorm:"not null;index"`
	LocationCode string `json:"location_code" gorm:"not null"`
	LocationName string `json:"location_name" gorm:"not null"`
}

type Material struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	MaterialID          string         `json:"material_id" gorm:"unique;not null"`
	MaterialDescription string         `json:"material_description" gorm:"not null"`
	UnitPrice           float64        `json:"unit_price" gorm:"not null"`
	BaseUoM             string         `json:"base_uom" gorm:"column:base_uom;default:'EA'"`
	AvailableQuantity   int            `json:"available_quantity"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

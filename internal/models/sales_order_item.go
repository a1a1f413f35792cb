package models

import (
	"time"

	"gorm.io/gorm"
)

type SalesOrderItem struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	SalesOrderID        string         `json:"sales_order_id" gorm:"size:36;not null;index"`
	ItemNumber          int            `json:"item_number" gorm:"not null"` // 10, 20, 30, ...
	MaterialID          string         `json:"material_id" gorm:"not null"`
	MaterialDescription string         `json:"material_description"`
	Quantity            float64        `json:"quantity" gorm:"not null"`
	UnitOfMeasure       string         `json:"unit_of_measure" gorm:"not null"`
	UnitPrice           float64        `json:"unit_price" gorm:"not null"`
	TotalPrice          float64        `json:"total_price" gorm:"not null"`
	Plant               string         `json:"plant"`
	StorageLocation     string         `json:"storage_location"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

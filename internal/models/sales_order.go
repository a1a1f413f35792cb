package models

import (
	"time"

	"gorm.io/gorm"
)

type SalesOrder struct {
	ID                      string                 `json:"id" gorm:"primaryKey;size:36"`
	OrderNumber             string                 `json:"order_number" gorm:"unique;not null"`
	SoldToParty             string                 `json:"sold_to_party" gorm:"not null"`
	ShipToParty             string                 `json:"ship_to_party" gorm:"not null"`
	PurchaseOrderByCustomer string                 `json:"purchase_order_by_customer" gorm:"not null"`
	RequestedDeliveryDate   time.Time              `json:"requested_delivery_date" gorm:"not null"`
	Incoterms               string                 `json:"incoterms"`
	Currency                string                 `json:"currency" gorm:"default:'USD'"`
	TotalItems              int                    `json:"total_items"`
	NetAmount               float64                `json:"net_amount"`
	TaxAmount               float64                `json:"tax_amount"`
	TotalAmount             float64                `json:"total_amount"`
	Status                  int                    `json:"status" gorm:"default:1"` // 1 draft, 2 submitted, 8 error
	Items                   []SalesOrderItem       `json:"items" gorm:"foreignKey:SalesOrderID"`
	Attachments             []SalesOrderAttachment `json:"attachments" gorm:"foreignKey:SalesOrderID"`
	CreatedAt               time.Time              `json:"created_at"`
	UpdatedAt               time.Time              `json:"updated_at"`
	DeletedAt               gorm.DeletedAt         `json:"deleted_at" gorm:"index"`
}

type SalesOrderStatus int

const (
	StatusDraft     SalesOrderStatus = 1
	StatusSubmitted SalesOrderStatus = 2
	StatusError     SalesOrderStatus = 8
)

// StatusText returns the display name used by the order list.
func StatusText(status int) string {
	switch SalesOrderStatus(status) {
	case StatusDraft:
		return "Draft"
	case StatusSubmitted:
		return "Submitted"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

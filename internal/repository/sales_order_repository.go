package repository

import (
	"order_entry/internal/models"
	"time"

	"gorm.io/gorm"
)

// SalesOrderFilter carries the combinable search criteria of the order list.
type SalesOrderFilter struct {
	OrderNumber           string     // contains
	CustomerPO            string     // contains
	ShipToParty           string     // contains
	RequestedDeliveryDate *time.Time // equals (calendar day)
	Status                *int       // equals
}

type SalesOrderRepository interface {
	Create(order *models.SalesOrder) error
	GetByID(id string) (*models.SalesOrder, error)
	GetAll() ([]models.SalesOrder, error)
	Search(filter SalesOrderFilter) ([]models.SalesOrder, error)
	Count() (int64, error)
	Update(order *models.SalesOrder) error
	UpdateStatus(id string, status int) error
	Delete(id string) error
}

type salesOrderRepository struct {
	db *gorm.DB
}

func NewSalesOrderRepository(db *gorm.DB) SalesOrderRepository {
	return &salesOrderRepository{db: db}
}

func (r *salesOrderRepository) Create(order *models.SalesOrder) error {
	return r.db.Create(order).Error
}

func (r *salesOrderRepository) GetByID(id string) (*models.SalesOrder, error) {
	var order models.SalesOrder
	err := r.db.Preload("Items").Preload("Attachments").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *salesOrderRepository) GetAll() ([]models.SalesOrder, error) {
	var orders []models.SalesOrder
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *salesOrderRepository) Search(filter SalesOrderFilter) ([]models.SalesOrder, error) {
	query := r.db.Preload("Items")

	if filter.OrderNumber != "" {
		query = query.Where("order_number LIKE ?", "%"+filter.OrderNumber+"%")
	}
	if filter.CustomerPO != "" {
		query = query.Where("purchase_order_by_customer LIKE ?", "%"+filter.CustomerPO+"%")
	}
	if filter.ShipToParty != "" {
		query = query.Where("ship_to_party LIKE ?", "%"+filter.ShipToParty+"%")
	}
	if filter.RequestedDeliveryDate != nil {
		dayStart := filter.RequestedDeliveryDate.Truncate(24 * time.Hour)
		query = query.Where("requested_delivery_date >= ? AND requested_delivery_date < ?", dayStart, dayStart.Add(24*time.Hour))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var orders []models.SalesOrder
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *salesOrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SalesOrder{}).Unscoped().Count(&count).Error
	return count, err
}

func (r *salesOrderRepository) Update(order *models.SalesOrder) error {
	return r.db.Save(order).Error
}

func (r *salesOrderRepository) UpdateStatus(id string, status int) error {
	return r.db.Model(&models.SalesOrder{}).Where("id = ?", id).Update("status", status).Error
}

func (r *salesOrderRepository) Delete(id string) error {
	return r.db.Delete(&models.SalesOrder{}, "id = ?", id).Error
}

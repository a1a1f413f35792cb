package services

import (
	"errors"
	"fmt"
	"order_entry/internal/models"
	"order_entry/internal/orderform"
	"order_entry/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order ID does not exist.
var ErrOrderNotFound = errors.New("sales order not found")

// ApprovalClient posts a finished order to the external approval system.
type ApprovalClient interface {
	SubmitOrder(order *orderform.SubmitOrder) error
}

// SubmitError is one per-order failure inside a batch submission.
type SubmitError struct {
	OrderID string `json:"order_id,omitempty"`
	Message string `json:"message"`
}

// SubmitResult is the outcome of a batch submission. A batch with any failed
// order is not successful, but successfully submitted orders stay submitted.
type SubmitResult struct {
	Success      bool          `json:"success"`
	SubmittedIDs []string      `json:"submitted_ids"`
	Errors       []SubmitError `json:"errors,omitempty"`
}

type SalesOrderService interface {
	CreateFromForm(form orderform.Form) (*models.SalesOrder, orderform.Form, error)
	GetByID(id string) (*models.SalesOrder, error)
	Search(filter repository.SalesOrderFilter) ([]models.SalesOrder, error)
	Delete(id string) error
	SubmitForApproval(orderIDs []string) (*SubmitResult, error)
}

type salesOrderService struct {
	orderRepo repository.SalesOrderRepository
	approval  ApprovalClient
}

func NewSalesOrderService(orderRepo repository.SalesOrderRepository, approval ApprovalClient) SalesOrderService {
	return &salesOrderService{orderRepo: orderRepo, approval: approval}
}

// CreateFromForm validates the submitted form snapshot and persists it as a
// draft order. When validation fails nothing is persisted; the returned
// snapshot carries every field state so the caller can re-render.
func (s *salesOrderService) CreateFromForm(form orderform.Form) (*models.SalesOrder, orderform.Form, error) {
	validated := orderform.Validate(orderform.Recalculate(form))
	if !validated.FormValid {
		return nil, validated, nil
	}

	deliveryDate, err := time.ParseInLocation("2006-01-02", validated.RequestedDeliveryDate, time.Local)
	if err != nil {
		return nil, validated, fmt.Errorf("failed to parse delivery date: %w", err)
	}

	orderNumber, err := s.nextOrderNumber()
	if err != nil {
		return nil, validated, err
	}

	order := &models.SalesOrder{
		ID:                      uuid.NewString(),
		OrderNumber:             orderNumber,
		SoldToParty:             validated.SoldToParty,
		ShipToParty:             validated.ShipToParty,
		PurchaseOrderByCustomer: validated.PONumber,
		RequestedDeliveryDate:   deliveryDate,
		Incoterms:               validated.Incoterms,
		Currency:                validated.Currency,
		TotalItems:              validated.Totals.TotalItems,
		NetAmount:               amountToFloat(validated.Totals.NetAmount),
		TaxAmount:               amountToFloat(validated.Totals.TaxAmount),
		TotalAmount:             amountToFloat(validated.Totals.TotalAmount),
		Status:                  int(models.StatusDraft),
	}

	for _, item := range validated.LineItems {
		order.Items = append(order.Items, models.SalesOrderItem{
			ItemNumber:          item.ItemNumber,
			MaterialID:          item.MaterialID,
			MaterialDescription: item.MaterialDescription,
			Quantity:            amountToFloat(item.Quantity),
			UnitOfMeasure:       item.UnitOfMeasure,
			UnitPrice:           amountToFloat(item.UnitPrice),
			TotalPrice:          amountToFloat(item.TotalPrice),
			Plant:               item.Plant,
			StorageLocation:     item.StorageLocation,
		})
	}

	for _, a := range validated.Attachments {
		order.Attachments = append(order.Attachments, models.SalesOrderAttachment{
			ID:           a.ID,
			FileName:     a.FileName,
			FileType:     a.FileType,
			FileSize:     a.FileSize,
			FileSizeText: a.FileSizeText,
			Content:      a.Content,
			UploadDate:   a.UploadDate,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, validated, fmt.Errorf("failed to create sales order: %w", err)
	}
	return order, validated, nil
}

func (s *salesOrderService) GetByID(id string) (*models.SalesOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *salesOrderService) Search(filter repository.SalesOrderFilter) ([]models.SalesOrder, error) {
	return s.orderRepo.Search(filter)
}

func (s *salesOrderService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}

// SubmitForApproval posts each order to the approval system. Failures do not
// abort the batch: every order is attempted and reported individually.
// Submitted orders move to status 2, failed ones to status 8.
func (s *salesOrderService) SubmitForApproval(orderIDs []string) (*SubmitResult, error) {
	result := &SubmitResult{SubmittedIDs: []string{}}

	for _, id := range orderIDs {
		order, err := s.orderRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Errors = append(result.Errors, SubmitError{
					OrderID: id,
					Message: fmt.Sprintf("Can't find Sales Order with ID %s", id),
				})
				continue
			}
			return nil, fmt.Errorf("failed to load sales order %s: %w", id, err)
		}

		payload := orderform.BuildSubmitPayload(formFromOrder(order))
		payload.SalesOrder = order.OrderNumber

		if err := s.approval.SubmitOrder(&payload); err != nil {
			s.orderRepo.UpdateStatus(id, int(models.StatusError))
			result.Errors = append(result.Errors, SubmitError{
				OrderID: id,
				Message: fmt.Sprintf("Failed to submit Sales Order %s: %v", order.OrderNumber, err),
			})
			continue
		}

		if err := s.orderRepo.UpdateStatus(id, int(models.StatusSubmitted)); err != nil {
			return nil, fmt.Errorf("failed to update status of sales order %s: %w", id, err)
		}
		result.SubmittedIDs = append(result.SubmittedIDs, id)
	}

	result.Success = len(result.Errors) == 0
	return result, nil
}

// formFromOrder rebuilds a form snapshot from a persisted order so the
// submission payload goes through the same mapping as a live form.
func formFromOrder(order *models.SalesOrder) orderform.Form {
	form := orderform.New()
	form.SoldToParty = order.SoldToParty
	form.ShipToParty = order.ShipToParty
	form.PONumber = order.PurchaseOrderByCustomer
	form.RequestedDeliveryDate = order.RequestedDeliveryDate.Format("2006-01-02")
	form.Incoterms = order.Incoterms
	form.Currency = order.Currency

	for _, item := range order.Items {
		form.LineItems = append(form.LineItems, orderform.LineItem{
			ItemNumber:          item.ItemNumber,
			MaterialID:          item.MaterialID,
			MaterialDescription: item.MaterialDescription,
			Quantity:            decimal.NewFromFloat(item.Quantity).String(),
			UnitOfMeasure:       item.UnitOfMeasure,
			UnitPrice:           decimal.NewFromFloat(item.UnitPrice).String(),
			Plant:               item.Plant,
			StorageLocation:     item.StorageLocation,
		})
	}

	for _, a := range order.Attachments {
		form.Attachments = append(form.Attachments, orderform.Attachment{
			ID:           a.ID,
			FileName:     a.FileName,
			FileType:     a.FileType,
			FileSize:     a.FileSize,
			FileSizeText: a.FileSizeText,
			Content:      a.Content,
			UploadDate:   a.UploadDate,
		})
	}

	return form
}

func (s *salesOrderService) nextOrderNumber() (string, error) {
	count, err := s.orderRepo.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count sales orders: %w", err)
	}
	return fmt.Sprintf("SO-%08d", count+1), nil
}

func amountToFloat(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

package handlers

import (
	"errors"
	"net/http"
	"order_entry/internal/orderform"
	"order_entry/internal/repository"
	"order_entry/internal/services"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type SalesOrderHandler struct {
	salesOrderService services.SalesOrderService
}

func NewSalesOrderHandler(salesOrderService services.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{salesOrderService: salesOrderService}
}

// Create validates the submitted form snapshot and stores it as a draft
// order. An invalid form is not persisted; the response carries the
// validated snapshot so the UI can show every field state.
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var form orderform.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, validated, err := h.salesOrderService.CreateFromForm(form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sales order"})
		return
	}
	if order == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Please correct all validation errors before saving",
			"form":  validated,
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List returns orders matching the combinable query filters: order_number,
// customer_po and ship_to match as substrings, delivery_date (YYYY-MM-DD)
// and status match exactly.
func (h *SalesOrderHandler) List(c *gin.Context) {
	filter := repository.SalesOrderFilter{
		OrderNumber: c.Query("order_number"),
		CustomerPO:  c.Query("customer_po"),
		ShipToParty: c.Query("ship_to"),
	}

	if dateParam := c.Query("delivery_date"); dateParam != "" {
		date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery_date, expected YYYY-MM-DD"})
			return
		}
		filter.RequestedDeliveryDate = &date
	}

	if statusParam := c.Query("status"); statusParam != "" {
		status, err := strconv.Atoi(statusParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter.Status = &status
	}

	orders, err := h.salesOrderService.Search(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sales_orders": orders,
		"count":        len(orders),
	})
}

func (h *SalesOrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	order, err := h.salesOrderService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *SalesOrderHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.salesOrderService.Delete(id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sales order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"status": "deleted",
	})
}

type submitRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required"`
}

// Submit sends the selected orders to the approval system. Every order is
// attempted; per-order failures are reported as error details and leave the
// rest of the batch untouched.
func (h *SalesOrderHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if len(req.OrderIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one sales order is required"})
		return
	}

	result, err := h.salesOrderService.SubmitForApproval(req.OrderIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit sales orders"})
		return
	}

	if !result.Success {
		details := make([]gin.H, len(result.Errors))
		for i, e := range result.Errors {
			details[i] = gin.H{"message": e.Message}
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":       false,
			"submitted_ids": result.SubmittedIDs,
			"error": gin.H{
				"message": "Failed to submit sales orders",
				"details": details,
			},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

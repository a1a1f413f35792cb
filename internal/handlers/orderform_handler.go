package handlers

import (
	"net/http"
	"order_entry/internal/orderform"

	"github.com/gin-gonic/gin"
)

// OrderFormHandler exposes the form engine as stateless snapshot-in,
// snapshot-out endpoints. The UI keeps the single mutable form reference and
// re-renders from whatever snapshot comes back.
type OrderFormHandler struct{}

func NewOrderFormHandler() *OrderFormHandler {
	return &OrderFormHandler{}
}

// NewForm returns an empty form with defaults applied.
func (h *OrderFormHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, orderform.New())
}

// Validate recomputes totals, runs every validator and returns the snapshot
// with all field states populated. Validation failure is data, not an error:
// the response is always 200.
func (h *OrderFormHandler) Validate(c *gin.Context) {
	var form orderform.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	c.JSON(http.StatusOK, orderform.Validate(orderform.Recalculate(form)))
}

// AddLineItem appends an empty line item and returns the updated snapshot.
func (h *OrderFormHandler) AddLineItem(c *gin.Context) {
	var form orderform.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	form.LineItems = orderform.AddLineItem(form.LineItems)
	c.JSON(http.StatusOK, orderform.Recalculate(form))
}

type removeLineItemRequest struct {
	Form  orderform.Form `json:"form"`
	Index int            `json:"index"`
}

// RemoveLineItem deletes the line item at the given index, renumbers the
// remaining ones and clears the selection. A negative index is a no-op.
func (h *OrderFormHandler) RemoveLineItem(c *gin.Context) {
	var req removeLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	form := req.Form
	form.LineItems = orderform.RemoveLineItem(form.LineItems, req.Index)
	form = orderform.DeselectLineItem(form)
	c.JSON(http.StatusOK, orderform.Recalculate(form))
}

type addAttachmentsRequest struct {
	Form  orderform.Form           `json:"form"`
	Files []orderform.IncomingFile `json:"files"`
}

// AddAttachments attaches the incoming batch. Constraint violations (count,
// size, duplicate name) reject the whole batch with a single message.
func (h *OrderFormHandler) AddAttachments(c *gin.Context) {
	var req addAttachmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	form := req.Form
	attachments, err := orderform.AddFiles(form.Attachments, req.Files)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	form.Attachments = attachments
	c.JSON(http.StatusOK, form)
}

type removeAttachmentRequest struct {
	Form orderform.Form `json:"form"`
	ID   string         `json:"id"`
}

// RemoveAttachment drops the attachment with the given id; unknown ids are a
// no-op.
func (h *OrderFormHandler) RemoveAttachment(c *gin.Context) {
	var req removeAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	form := req.Form
	form.Attachments = orderform.RemoveFile(form.Attachments, req.ID)
	c.JSON(http.StatusOK, form)
}

package orderform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubmitPayload(t *testing.T) {
	f := validHeaderForm()
	f.LineItems = []LineItem{
		{ItemNumber: 10, MaterialID: "MAT001", Quantity: "2", UnitOfMeasure: "EA",
			UnitPrice: "1299.99", Plant: "1000", StorageLocation: "0001"},
	}
	f.Attachments = []Attachment{
		{ID: "x", FileName: "quote.pdf", FileType: "PDF", Content: "aGVsbG8=", UploadDate: "2026-08-29"},
	}

	payload := BuildSubmitPayload(f)

	assert.Equal(t, f.SoldToParty, payload.SoldToParty)
	assert.Equal(t, f.PONumber, payload.PurchaseOrderByCustomer)
	assert.Equal(t, f.Incoterms, payload.IncotermsClassification)
	assert.Equal(t, "USD", payload.TransactionCurrency)

	// Totals are derived from the items, not taken from the snapshot
	assert.Equal(t, "2599.98", payload.TotalNetAmount)
	assert.Equal(t, "494.00", payload.TaxAmount)
	assert.Equal(t, "3093.98", payload.TotalAmount)

	assert.Len(t, payload.Items, 1)
	item := payload.Items[0]
	assert.Equal(t, 10, item.SalesOrderItem)
	assert.Equal(t, "MAT001", item.Material)
	assert.Equal(t, "2", item.RequestedQuantity)
	assert.Equal(t, "2599.98", item.NetAmount)
	assert.Equal(t, "1000", item.ProductionPlant)

	assert.Len(t, payload.Attachments, 1)
	assert.Equal(t, "quote.pdf", payload.Attachments[0].FileName)
	assert.Equal(t, "aGVsbG8=", payload.Attachments[0].Content)
}

func TestBuildSubmitPayloadIgnoresStaleTotals(t *testing.T) {
	f := New()
	f.LineItems = []LineItem{{ItemNumber: 10, Quantity: "1", UnitPrice: "100", TotalPrice: "999.99"}}
	f.Totals = Totals{NetAmount: "999.99", TaxAmount: "0.01", TotalAmount: "1000.00"}

	payload := BuildSubmitPayload(f)

	assert.Equal(t, "100.00", payload.TotalNetAmount)
	assert.Equal(t, "19.00", payload.TaxAmount)
	assert.Equal(t, "119.00", payload.TotalAmount)
	assert.Equal(t, "100.00", payload.Items[0].NetAmount)
}

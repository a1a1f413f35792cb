package orderform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validHeaderForm() Form {
	f := New()
	f.SoldToParty = "CUST001"
	f.ShipToParty = "CUST001"
	f.PONumber = "PO-4711"
	f.RequestedDeliveryDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	f.Incoterms = "FOB"
	return f
}

func validLineItem() LineItem {
	return LineItem{
		ItemNumber:      10,
		MaterialID:      "MAT001",
		Quantity:        "2",
		UnitOfMeasure:   "EA",
		UnitPrice:       "1299.99",
		Plant:           "1000",
		StorageLocation: "0001",
	}
}

func TestNewFormDefaults(t *testing.T) {
	f := New()

	assert.Equal(t, "USD", f.Currency)
	assert.Equal(t, -1, f.SelectedLineItemIndex)
	assert.Empty(t, f.LineItems)
	assert.Empty(t, f.Attachments)
	assert.False(t, f.FormValid)
}

func TestValidateSoldToRequired(t *testing.T) {
	state, ok := ValidateSoldTo(Form{})

	assert.False(t, ok)
	assert.Equal(t, StateError, state.State)
	assert.Equal(t, "Sold-to customer is required", state.Text)

	state, ok = ValidateSoldTo(Form{SoldToParty: "CUST001"})
	assert.True(t, ok)
	assert.Equal(t, StateNone, state.State)
	assert.Empty(t, state.Text)
}

func TestValidateShipToRequired(t *testing.T) {
	state, ok := ValidateShipTo(Form{})

	assert.False(t, ok)
	assert.Equal(t, "Ship-to customer is required", state.Text)
}

func TestValidatePONumber(t *testing.T) {
	tests := []struct {
		name     string
		poNumber string
		wantOK   bool
		wantText string
	}{
		{"empty", "", false, "PO Number is required"},
		{"too short", "PO", false, "PO Number must be at least 3 characters"},
		{"minimum length", "PO1", true, ""},
		{"normal", "PO-12345", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := ValidatePONumber(Form{PONumber: tt.poNumber})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, state.Text)
		})
	}
}

func TestValidateRequestedDeliveryDate(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	state, ok := ValidateRequestedDeliveryDate(Form{RequestedDeliveryDate: yesterday})
	assert.False(t, ok)
	assert.Equal(t, "Delivery date cannot be in the past", state.Text)

	// Today at midnight is not in the past
	_, ok = ValidateRequestedDeliveryDate(Form{RequestedDeliveryDate: today})
	assert.True(t, ok)

	_, ok = ValidateRequestedDeliveryDate(Form{RequestedDeliveryDate: tomorrow})
	assert.True(t, ok)

	state, ok = ValidateRequestedDeliveryDate(Form{})
	assert.False(t, ok)
	assert.Equal(t, "Request delivery date is required", state.Text)

	// Malformed input never panics, it is simply invalid
	state, ok = ValidateRequestedDeliveryDate(Form{RequestedDeliveryDate: "not-a-date"})
	assert.False(t, ok)
	assert.Equal(t, StateError, state.State)
}

func TestValidateIncotermsRequired(t *testing.T) {
	state, ok := ValidateIncoterms(Form{})

	assert.False(t, ok)
	assert.Equal(t, "Incoterms is required", state.Text)
}

func TestValidateFormRequiresLineItems(t *testing.T) {
	// A fully valid header with no line items is still an invalid form
	f := Validate(validHeaderForm())

	assert.False(t, f.FormValid)
	assert.Equal(t, StateNone, f.HeaderStates.SoldTo.State)
	assert.Equal(t, StateNone, f.HeaderStates.PONumber.State)
}

func TestValidateFormValid(t *testing.T) {
	f := validHeaderForm()
	f.LineItems = []LineItem{validLineItem()}

	f = Validate(f)

	assert.True(t, f.FormValid)
}

func TestValidateFormPopulatesAllStates(t *testing.T) {
	f := New()
	f.PONumber = "PO"
	f.RequestedDeliveryDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	f.LineItems = []LineItem{{}}

	f = Validate(f)

	assert.False(t, f.FormValid)
	assert.Equal(t, "Sold-to customer is required", f.HeaderStates.SoldTo.Text)
	assert.Equal(t, "Ship-to customer is required", f.HeaderStates.ShipTo.Text)
	assert.Equal(t, "PO Number must be at least 3 characters", f.HeaderStates.PONumber.Text)
	assert.Equal(t, "Delivery date cannot be in the past", f.HeaderStates.RequestedDeliveryDate.Text)
	assert.Equal(t, "Incoterms is required", f.HeaderStates.Incoterms.Text)

	// Line item states are populated as well
	item := f.LineItems[0]
	assert.Equal(t, StateError, item.States.MaterialID.State)
	assert.Equal(t, StateError, item.States.Quantity.State)
}

func TestValidateFormInvalidLineItemInvalidatesForm(t *testing.T) {
	f := validHeaderForm()
	item := validLineItem()
	item.Quantity = "0"
	f.LineItems = []LineItem{validLineItem(), item}

	f = Validate(f)

	assert.False(t, f.FormValid)
	assert.Equal(t, StateNone, f.LineItems[0].States.Quantity.State)
	assert.Equal(t, StateError, f.LineItems[1].States.Quantity.State)
}

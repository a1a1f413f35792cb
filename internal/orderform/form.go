package orderform

import (
	"time"
)

// ValueState mirrors the visual states the order form renders next to a field.
type ValueState string

const (
	StateNone    ValueState = "None"
	StateError   ValueState = "Error"
	StateWarning ValueState = "Warning"
	StateSuccess ValueState = "Success"
)

// FieldState is the validation verdict for a single field.
type FieldState struct {
	State ValueState `json:"state"`
	Text  string     `json:"text"`
}

// HeaderStates holds one validation verdict per header field.
type HeaderStates struct {
	SoldTo                FieldState `json:"soldTo"`
	ShipTo                FieldState `json:"shipTo"`
	PONumber              FieldState `json:"poNumber"`
	RequestedDeliveryDate FieldState `json:"requestedDeliveryDate"`
	Incoterms             FieldState `json:"incoterms"`
}

// Form is one immutable snapshot of the order entry form. Every operation in
// this package takes a snapshot and returns a new one; the caller owns the
// single mutable reference and re-renders after each call.
type Form struct {
	SoldToParty           string `json:"soldToParty"`
	ShipToParty           string `json:"shipToParty"`
	PONumber              string `json:"poNumber"`
	RequestedDeliveryDate string `json:"requestedDeliveryDate"` // YYYY-MM-DD
	Incoterms             string `json:"incoterms"`
	Currency              string `json:"currency"`

	LineItems             []LineItem `json:"lineItems"`
	SelectedLineItemIndex int        `json:"selectedLineItemIndex"`

	Totals Totals `json:"totals"`

	Attachments []Attachment `json:"attachments"`

	FormValid    bool         `json:"formValid"`
	HeaderStates HeaderStates `json:"headerStates"`
}

const (
	DefaultCurrency      = "USD"
	DefaultUnitOfMeasure = "EA"

	dateLayout = "2006-01-02"
)

// New returns an empty form with defaults applied. An empty form is never
// valid: it has no line items.
func New() Form {
	return Form{
		Currency:              DefaultCurrency,
		LineItems:             []LineItem{},
		Attachments:           []Attachment{},
		SelectedLineItemIndex: -1,
	}
}

// ValidateSoldTo checks the sold-to party field.
func ValidateSoldTo(f Form) (FieldState, bool) {
	if f.SoldToParty == "" {
		return FieldState{State: StateError, Text: "Sold-to customer is required"}, false
	}
	return FieldState{State: StateNone}, true
}

// ValidateShipTo checks the ship-to party field.
func ValidateShipTo(f Form) (FieldState, bool) {
	if f.ShipToParty == "" {
		return FieldState{State: StateError, Text: "Ship-to customer is required"}, false
	}
	return FieldState{State: StateNone}, true
}

// ValidatePONumber checks the customer purchase order number field.
func ValidatePONumber(f Form) (FieldState, bool) {
	if f.PONumber == "" {
		return FieldState{State: StateError, Text: "PO Number is required"}, false
	}
	if len(f.PONumber) < 3 {
		return FieldState{State: StateError, Text: "PO Number must be at least 3 characters"}, false
	}
	return FieldState{State: StateNone}, true
}

// ValidateRequestedDeliveryDate checks the requested delivery date field.
// The comparison truncates today to midnight so a date picked earlier the
// same day never counts as past.
func ValidateRequestedDeliveryDate(f Form) (FieldState, bool) {
	if f.RequestedDeliveryDate == "" {
		return FieldState{State: StateError, Text: "Request delivery date is required"}, false
	}

	deliveryDate, err := time.ParseInLocation(dateLayout, f.RequestedDeliveryDate, time.Local)
	if err != nil {
		return FieldState{State: StateError, Text: "Request delivery date is required"}, false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if deliveryDate.Before(today) {
		return FieldState{State: StateError, Text: "Delivery date cannot be in the past"}, false
	}

	return FieldState{State: StateNone}, true
}

// ValidateIncoterms checks the incoterms field.
func ValidateIncoterms(f Form) (FieldState, bool) {
	if f.Incoterms == "" {
		return FieldState{State: StateError, Text: "Incoterms is required"}, false
	}
	return FieldState{State: StateNone}, true
}

// Validate runs every header and line item validator and returns a snapshot
// with all field states and the aggregate FormValid flag populated. An empty
// line item collection always invalidates the form.
func Validate(f Form) Form {
	var soldToValid, shipToValid, poValid, dateValid, incotermsValid bool

	f.HeaderStates.SoldTo, soldToValid = ValidateSoldTo(f)
	f.HeaderStates.ShipTo, shipToValid = ValidateShipTo(f)
	f.HeaderStates.PONumber, poValid = ValidatePONumber(f)
	f.HeaderStates.RequestedDeliveryDate, dateValid = ValidateRequestedDeliveryDate(f)
	f.HeaderStates.Incoterms, incotermsValid = ValidateIncoterms(f)

	headerValid := soldToValid && shipToValid && poValid && dateValid && incotermsValid

	itemsValid := len(f.LineItems) > 0
	items := make([]LineItem, len(f.LineItems))
	for i, item := range f.LineItems {
		validated, ok := ValidateLineItem(item)
		items[i] = validated
		if !ok {
			itemsValid = false
		}
	}
	f.LineItems = items

	f.FormValid = headerValid && itemsValid
	return f
}

package orderform

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItemStates holds one validation verdict per line item field.
type LineItemStates struct {
	MaterialID      FieldState `json:"materialID"`
	Quantity        FieldState `json:"quantity"`
	UnitOfMeasure   FieldState `json:"unitOfMeasure"`
	Plant           FieldState `json:"plant"`
	StorageLocation FieldState `json:"storageLocation"`
}

// LineItem is one product/quantity/price row of the order form. Quantity and
// unit price keep the raw user input; TotalPrice is always derived, never set
// by the caller.
type LineItem struct {
	ItemNumber          int    `json:"itemNumber"`
	MaterialID          string `json:"materialID"`
	MaterialDescription string `json:"materialDescription"`
	Quantity            string `json:"quantity"`
	UnitOfMeasure       string `json:"unitOfMeasure"`
	UnitPrice           string `json:"unitPrice"`
	TotalPrice          string `json:"totalPrice"`
	Plant               string `json:"plant"`
	StorageLocation     string `json:"storageLocation"`

	States LineItemStates `json:"states"`
}

// AddLineItem appends a fresh line item numbered (len+1)*10 and returns the
// new collection. The input slice is not modified.
func AddLineItem(items []LineItem) []LineItem {
	out := make([]LineItem, len(items), len(items)+1)
	copy(out, items)

	return append(out, LineItem{
		ItemNumber:    (len(items) + 1) * 10,
		UnitOfMeasure: DefaultUnitOfMeasure,
		UnitPrice:     "0",
		TotalPrice:    "0.00",
	})
}

// RemoveLineItem removes the item at index and renumbers the survivors to
// 10, 20, 30, ... preserving relative order. An index outside the collection
// is a no-op.
func RemoveLineItem(items []LineItem, index int) []LineItem {
	if index < 0 || index >= len(items) {
		return items
	}

	out := make([]LineItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	for i := range out {
		out[i].ItemNumber = (i + 1) * 10
	}
	return out
}

// SelectLineItem records the selected row on the snapshot. Selection is pure
// metadata: it never affects totals or validity. An index outside the
// collection clears the selection.
func SelectLineItem(f Form, index int) Form {
	if index < 0 || index >= len(f.LineItems) {
		f.SelectedLineItemIndex = -1
		return f
	}
	f.SelectedLineItemIndex = index
	return f
}

// DeselectLineItem clears the selection.
func DeselectLineItem(f Form) Form {
	f.SelectedLineItemIndex = -1
	return f
}

// ValidateLineItem checks the five required fields of one line item. All five
// are evaluated and reported; there is no short-circuiting.
func ValidateLineItem(item LineItem) (LineItem, bool) {
	valid := true

	if item.MaterialID == "" {
		item.States.MaterialID = FieldState{State: StateError, Text: "Material is required"}
		valid = false
	} else {
		item.States.MaterialID = FieldState{State: StateNone}
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(item.Quantity))
	if item.Quantity == "" || err != nil || !qty.IsPositive() {
		item.States.Quantity = FieldState{State: StateError, Text: "Valid quantity is required"}
		valid = false
	} else {
		item.States.Quantity = FieldState{State: StateNone}
	}

	if item.UnitOfMeasure == "" {
		item.States.UnitOfMeasure = FieldState{State: StateError, Text: "Unit of measure is required"}
		valid = false
	} else {
		item.States.UnitOfMeasure = FieldState{State: StateNone}
	}

	if item.Plant == "" {
		item.States.Plant = FieldState{State: StateError, Text: "Plant is required"}
		valid = false
	} else {
		item.States.Plant = FieldState{State: StateNone}
	}

	if item.StorageLocation == "" {
		item.States.StorageLocation = FieldState{State: StateError, Text: "Storage location is required"}
		valid = false
	} else {
		item.States.StorageLocation = FieldState{State: StateNone}
	}

	return item, valid
}

package orderform

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed VAT rate applied to the net amount.
var TaxRate = decimal.NewFromFloat(0.19)

// Totals is the order-level summary derived from the line item collection.
// It is recomputed in full on every mutation, never patched incrementally.
type Totals struct {
	TotalItems  int    `json:"totalItems"`
	NetAmount   string `json:"netAmount"`
	TaxAmount   string `json:"taxAmount"`
	TotalAmount string `json:"totalAmount"`
}

// parseAmount reads a user-entered number, treating anything non-numeric as
// zero so totals stay renderable while the user is still typing.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LineTotal computes quantity x unit price rounded to 2 decimals.
func LineTotal(quantity, unitPrice string) decimal.Decimal {
	return parseAmount(quantity).Mul(parseAmount(unitPrice)).Round(2)
}

// CalculateTotals derives the order totals purely from the current line item
// collection.
func CalculateTotals(items []LineItem) Totals {
	net := decimal.Zero
	for _, item := range items {
		net = net.Add(LineTotal(item.Quantity, item.UnitPrice))
	}
	net = net.Round(2)
	tax := net.Mul(TaxRate).Round(2)
	total := net.Add(tax).Round(2)

	return Totals{
		TotalItems:  len(items),
		NetAmount:   net.StringFixed(2),
		TaxAmount:   tax.StringFixed(2),
		TotalAmount: total.StringFixed(2),
	}
}

// Recalculate refreshes every line item's derived total and the order totals,
// returning the updated snapshot.
func Recalculate(f Form) Form {
	items := make([]LineItem, len(f.LineItems))
	for i, item := range f.LineItems {
		item.TotalPrice = LineTotal(item.Quantity, item.UnitPrice).StringFixed(2)
		items[i] = item
	}
	f.LineItems = items
	f.Totals = CalculateTotals(items)
	return f
}

// Package calculator holds the pure arithmetic of the billing desk: line and
// bill totals, currency text, and the monthly sales aggregation.
package calculator

import "github.com/mmynk/billdesk/internal/models"

// Totals are the two figures shown under the bill.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	GrandTotal float64 `json:"grandTotal"`
}

// LineTotal returns quantity × unit price for one line, with unparsable
// values counted as 0.
func LineTotal(item models.LineItem) float64 {
	return ParseAmount(item.Quantity) * ParseAmount(item.UnitPrice)
}

// Subtotal sums the line totals of items.
func Subtotal(items []models.LineItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item)
	}
	return subtotal
}

// GrandTotal derives the payable amount from the subtotal.
// No surcharges or discounts apply yet, so it is the subtotal unchanged.
func GrandTotal(subtotal float64) float64 {
	return subtotal
}

// ComputeTotals recomputes both totals over the full set of items.
func ComputeTotals(items []models.LineItem) Totals {
	subtotal := Subtotal(items)
	return Totals{
		Subtotal:   subtotal,
		GrandTotal: GrandTotal(subtotal),
	}
}

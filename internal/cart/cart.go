// Package cart keeps the line items of the bill being assembled and
// recomputes its totals after every change.
package cart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/mmynk/billdesk/internal/calculator"
	"github.com/mmynk/billdesk/internal/catalog"
	"github.com/mmynk/billdesk/internal/models"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownField   = errors.New("unknown line field")
)

// Defaults for a blank row ready for manual entry.
const (
	DefaultQuantity  = "1"
	DefaultUnitPrice = "0"
)

// LineView is a line item together with its computed total, ready to render.
type LineView struct {
	models.LineItem
	LineTotal        float64 `json:"lineTotal"`
	LineTotalDisplay string  `json:"lineTotalDisplay"`
}

// Snapshot is the full state a renderer needs to redraw the bill.
type Snapshot struct {
	Header            models.BillHeader `json:"header"`
	Lines             []LineView        `json:"lines"`
	Totals            calculator.Totals `json:"totals"`
	SubtotalDisplay   string            `json:"subtotalDisplay"`
	GrandTotalDisplay string            `json:"grandTotalDisplay"`
}

// Cart owns the ordered line items of one bill. Lines live in an arena keyed
// by opaque IDs so callers never hold positions. Cart is not safe for
// concurrent use; the terminal serialises access.
type Cart struct {
	catalog *catalog.Catalog
	lines   map[string]*models.LineItem
	order   []string
	header  models.BillHeader
	newID   func() string
}

// New creates an empty cart that seeds catalogue lines from cat.
func New(cat *catalog.Catalog) *Cart {
	if cat == nil {
		cat = catalog.New(nil)
	}
	return &Cart{
		catalog: cat,
		lines:   make(map[string]*models.LineItem),
		newID:   uuid.NewString,
	}
}

// AddLine appends a line with the given raw values. Nothing is validated here;
// coercion happens when totals are computed.
func (c *Cart) AddLine(description, quantity, unitPrice string) (string, Snapshot) {
	id := c.newID()
	c.lines[id] = &models.LineItem{
		ID:          id,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	c.order = append(c.order, id)
	return id, c.Snapshot()
}

// AddBlankLine appends an empty row with quantity 1 and price 0.
func (c *Cart) AddBlankLine() (string, Snapshot) {
	return c.AddLine("", DefaultQuantity, DefaultUnitPrice)
}

// AddProduct appends one unit of a catalogue product at its list price.
func (c *Cart) AddProduct(productID string) (string, Snapshot, error) {
	p, ok := c.catalog.Lookup(productID)
	if !ok {
		return "", c.Snapshot(), fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	id, snap := c.AddLine(p.Name, DefaultQuantity, strconv.FormatFloat(p.Price, 'f', -1, 64))
	return id, snap, nil
}

// UpdateLine sets one field of a line to raw. Updating a line that is no
// longer on the bill is a no-op.
func (c *Cart) UpdateLine(id string, field models.LineField, raw string) (Snapshot, error) {
	switch field {
	case models.FieldDescription, models.FieldQuantity, models.FieldUnitPrice:
	default:
		return c.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	item, ok := c.lines[id]
	if !ok {
		return c.Snapshot(), nil
	}
	switch field {
	case models.FieldDescription:
		item.Description = raw
	case models.FieldQuantity:
		item.Quantity = raw
	case models.FieldUnitPrice:
		item.UnitPrice = raw
	}
	return c.Snapshot(), nil
}

// RemoveLine deletes a line wherever it sits. Removing an unknown or
// already removed line is ignored.
func (c *Cart) RemoveLine(id string) Snapshot {
	if _, ok := c.lines[id]; !ok {
		return c.Snapshot()
	}
	delete(c.lines, id)
	for i, lineID := range c.order {
		if lineID == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return c.Snapshot()
}

// ClearAll empties the bill and the customer details. There is no undo;
// callers must confirm with the clerk first.
func (c *Cart) ClearAll() Snapshot {
	c.lines = make(map[string]*models.LineItem)
	c.order = nil
	c.header.ClearCustomer()
	return c.Snapshot()
}

// SetHeader replaces the customer and invoice details.
func (c *Cart) SetHeader(h models.BillHeader) Snapshot {
	c.header = h
	return c.Snapshot()
}

// Header returns the current customer and invoice details.
func (c *Cart) Header() models.BillHeader {
	return c.header
}

// Lines returns copies of the line items in insertion order.
func (c *Cart) Lines() []models.LineItem {
	out := make([]models.LineItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Len reports how many lines are on the bill.
func (c *Cart) Len() int {
	return len(c.order)
}

// ComputeTotals recomputes the subtotal and grand total over every current line.
func (c *Cart) ComputeTotals() calculator.Totals {
	return calculator.ComputeTotals(c.Lines())
}

// Snapshot renders the current bill.
func (c *Cart) Snapshot() Snapshot {
	items := c.Lines()
	views := make([]LineView, len(items))
	for i, item := range items {
		total := calculator.LineTotal(item)
		views[i] = LineView{
			LineItem:         item,
			LineTotal:        total,
			LineTotalDisplay: calculator.FormatCurrency(total),
		}
	}
	totals := calculator.ComputeTotals(items)
	return Snapshot{
		Header:            c.header,
		Lines:             views,
		Totals:            totals,
		SubtotalDisplay:   calculator.FormatCurrency(totals.Subtotal),
		GrandTotalDisplay: calculator.FormatCurrency(totals.GrandTotal),
	}
}

package models

// LineItem represents a single billable row on the counter bill.
// Quantity and UnitPrice hold raw clerk input; use the calculator package
// to turn them into numbers.
type LineItem struct {
	// ID is the opaque handle of the line (UUID format).
	// It is independent of the row's position on the bill.
	ID string `json:"id"`

	// Description is free text (e.g., "King size bed"). May be empty.
	Description string `json:"description"`

	// Quantity is the raw quantity text. Unparsable or negative values count as 0.
	Quantity string `json:"quantity"`

	// UnitPrice is the raw unit price text. Same coercion rule as Quantity.
	UnitPrice string `json:"unitPrice"`
}

// LineField names an editable field of a LineItem.
type LineField string

const (
	FieldDescription LineField = "description"
	FieldQuantity    LineField = "quantity"
	FieldUnitPrice   LineField = "unitPrice"
)

// BillHeader holds the customer and invoice details shown above the line items.
type BillHeader struct {
	InvoiceNumber   string `json:"invoiceNumber"`
	InvoiceDate     string `json:"invoiceDate"` // YYYY-MM-DD, empty means "today" at payment time
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	Notes           string `json:"notes"`
}

// ClearCustomer empties the customer fields and notes.
// The invoice number and date survive a clear.
func (h *BillHeader) ClearCustomer() {
	h.CustomerName = ""
	h.CustomerPhone = ""
	h.CustomerAddress = ""
	h.Notes = ""
}

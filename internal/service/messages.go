package service

import (
	"github.com/mmynk/billdesk/internal/cart"
	"github.com/mmynk/billdesk/internal/models"
	"github.com/mmynk/billdesk/internal/terminal"
)

type Empty struct{}

type ListCatalogResponse struct {
	Products []models.Product `json:"products"`
}

type CartResponse struct {
	Cart cart.Snapshot `json:"cart"`
}

// AddLineRequest adds a line. Blank quantity and unit price take the
// defaults of a fresh row.
type AddLineRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type AddLineResponse struct {
	LineID string        `json:"lineId"`
	Cart   cart.Snapshot `json:"cart"`
}

type AddProductRequest struct {
	ProductID string `json:"productId"`
}

type UpdateLineRequest struct {
	LineID string           `json:"lineId"`
	Field  models.LineField `json:"field"`
	Value  string           `json:"value"`
}

type RemoveLineRequest struct {
	LineID string `json:"lineId"`
}

type ClearAllRequest struct {
	Confirmed bool `json:"confirmed"`
}

type SetHeaderRequest struct {
	Header models.BillHeader `json:"header"`
}

// PayRequest takes payment for the current bill. A blank InvoiceDate falls
// back to the header's date, then to today.
type PayRequest struct {
	InvoiceDate string `json:"invoiceDate"`
}

type PayResponse struct {
	Confirmation terminal.PaymentConfirmation `json:"confirmation"`
}

type MonthlyReportResponse struct {
	Report terminal.Report `json:"report"`
}

type LoadHistoryResponse struct {
	Sales []models.SaleRecord `json:"sales"`
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/billdesk/internal/cart"
	"github.com/mmynk/billdesk/internal/terminal"
)

// BillingService implements the Connect BillingService over one terminal.
type BillingService struct {
	term *terminal.Terminal
}

// NewBillingService creates a new BillingService backed by term.
func NewBillingService(term *terminal.Terminal) *BillingService {
	return &BillingService{term: term}
}

// ListCatalog returns the product catalogue.
func (s *BillingService) ListCatalog(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListCatalogResponse], error) {
	return connect.NewResponse(&ListCatalogResponse{Products: s.term.Catalog()}), nil
}

// GetCart returns the current bill.
func (s *BillingService) GetCart(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CartResponse], error) {
	return connect.NewResponse(&CartResponse{Cart: s.term.Cart()}), nil
}

// AddLine appends a line to the bill.
func (s *BillingService) AddLine(ctx context.Context, req *connect.Request[AddLineRequest]) (*connect.Response[AddLineResponse], error) {
	qty := req.Msg.Quantity
	if strings.TrimSpace(qty) == "" {
		qty = cart.DefaultQuantity
	}
	price := req.Msg.UnitPrice
	if strings.TrimSpace(price) == "" {
		price = cart.DefaultUnitPrice
	}

	id, snap := s.term.AddLine(req.Msg.Description, qty, price)
	slog.Debug("Line added", "line_id", id, "lines", len(snap.Lines))

	return connect.NewResponse(&AddLineResponse{LineID: id, Cart: snap}), nil
}

// AddProduct adds a catalogue product as a new line.
func (s *BillingService) AddProduct(ctx context.Context, req *connect.Request[AddProductRequest]) (*connect.Response[AddLineResponse], error) {
	id, snap, err := s.term.AddProduct(req.Msg.ProductID)
	if err != nil {
		slog.Warn("AddProduct failed", "product_id", req.Msg.ProductID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddLineResponse{LineID: id, Cart: snap}), nil
}

// UpdateLine edits one field of a line.
func (s *BillingService) UpdateLine(ctx context.Context, req *connect.Request[UpdateLineRequest]) (*connect.Response[CartResponse], error) {
	snap, err := s.term.UpdateLine(req.Msg.LineID, req.Msg.Field, req.Msg.Value)
	if err != nil {
		slog.Warn("UpdateLine failed", "line_id", req.Msg.LineID, "field", req.Msg.Field, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CartResponse{Cart: snap}), nil
}

// RemoveLine deletes a line. Unknown IDs are ignored.
func (s *BillingService) RemoveLine(ctx context.Context, req *connect.Request[RemoveLineRequest]) (*connect.Response[CartResponse], error) {
	return connect.NewResponse(&CartResponse{Cart: s.term.RemoveLine(req.Msg.LineID)}), nil
}

// ClearAll empties the bill once the clerk has confirmed.
func (s *BillingService) ClearAll(ctx context.Context, req *connect.Request[ClearAllRequest]) (*connect.Response[CartResponse], error) {
	snap, err := s.term.ClearAll(req.Msg.Confirmed)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CartResponse{Cart: snap}), nil
}

// SetHeader replaces the invoice and customer details.
func (s *BillingService) SetHeader(ctx context.Context, req *connect.Request[SetHeaderRequest]) (*connect.Response[CartResponse], error) {
	return connect.NewResponse(&CartResponse{Cart: s.term.SetHeader(req.Msg.Header)}), nil
}

// Pay takes payment for the current bill and records the sale.
func (s *BillingService) Pay(ctx context.Context, req *connect.Request[PayRequest]) (*connect.Response[PayResponse], error) {
	slog.Info("Pay request received", "invoice_date", req.Msg.InvoiceDate)

	conf, err := s.term.Pay(ctx, req.Msg.InvoiceDate)
	if err != nil {
		slog.Warn("Pay failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&PayResponse{Confirmation: conf}), nil
}

// MonthlyReport returns sales totals per month.
func (s *BillingService) MonthlyReport(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[MonthlyReportResponse], error) {
	report := s.term.Report(ctx)
	slog.Info("MonthlyReport served", "months", len(report.Months), "degraded", report.Degraded)
	return connect.NewResponse(&MonthlyReportResponse{Report: report}), nil
}

// LoadHistory returns every recorded sale.
func (s *BillingService) LoadHistory(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[LoadHistoryResponse], error) {
	return connect.NewResponse(&LoadHistoryResponse{Sales: s.term.History(ctx)}), nil
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, cart.ErrUnknownProduct):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, cart.ErrUnknownField):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, terminal.ErrEmptyBill), errors.Is(err, terminal.ErrClearNotConfirmed):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// Package terminal runs one clerk's billing counter: it sequences cart edits,
// payment and reporting over a cart and a sales ledger.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/billdesk/internal/calculator"
	"github.com/mmynk/billdesk/internal/cart"
	"github.com/mmynk/billdesk/internal/catalog"
	"github.com/mmynk/billdesk/internal/ledger"
	"github.com/mmynk/billdesk/internal/models"
	"github.com/mmynk/billdesk/pkg/metrics"
)

var (
	ErrEmptyBill         = errors.New("please add at least one item before taking payment")
	ErrClearNotConfirmed = errors.New("clearing the bill must be confirmed")
)

// PaymentConfirmation is what the payment-confirmation screen shows.
type PaymentConfirmation struct {
	Sale          models.SaleRecord `json:"sale"`
	AmountDisplay string            `json:"amountDisplay"`
	Durability    ledger.Durability `json:"durability"`
}

// ReportLine is one month of the sales report.
type ReportLine struct {
	Month        string  `json:"month"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay"`
}

// Report is the monthly sales report. Empty is set when there is nothing to show.
type Report struct {
	Months   []ReportLine `json:"months"`
	Empty    bool         `json:"empty"`
	Degraded bool         `json:"degraded"`
}

// Params wires a Terminal.
type Params struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
	Metrics *metrics.BillingMetrics
	Clock   func() time.Time
	Logger  *slog.Logger
}

// Terminal serialises every operation, so each edit runs to completion,
// totals included, before the next one starts.
type Terminal struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	cart    *cart.Cart
	ledger  *ledger.Ledger
	metrics *metrics.BillingMetrics
	now     func() time.Time
	logger  *slog.Logger
}

// New creates a terminal with an empty bill.
func New(p Params) (*Terminal, error) {
	if p.Ledger == nil {
		return nil, fmt.Errorf("ledger required")
	}
	if p.Catalog == nil {
		p.Catalog = catalog.Default()
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return &Terminal{
		catalog: p.Catalog,
		cart:    cart.New(p.Catalog),
		ledger:  p.Ledger,
		metrics: p.Metrics,
		now:     p.Clock,
		logger:  p.Logger,
	}, nil
}

// Catalog lists the products that can be added to the bill.
func (t *Terminal) Catalog() []models.Product {
	return t.catalog.Products()
}

// Cart returns the current bill.
func (t *Terminal) Cart() cart.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cart.Snapshot()
}

// AddLine appends a manual line with raw values.
func (t *Terminal) AddLine(description, quantity, unitPrice string) (string, cart.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics.IncCartMutation("add_line")
	return t.cart.AddLine(description, quantity, unitPrice)
}

// AddBlankLine appends an empty row ready for manual entry.
func (t *Terminal) AddBlankLine() (string, cart.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics.IncCartMutation("add_line")
	return t.cart.AddBlankLine()
}

// AddProduct appends one unit of a catalogue product.
func (t *Terminal) AddProduct(productID string) (string, cart.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, snap, err := t.cart.AddProduct(productID)
	if err != nil {
		return "", snap, err
	}
	t.metrics.IncCartMutation("add_product")
	return id, snap, nil
}

// UpdateLine edits one field of a line.
func (t *Terminal) UpdateLine(id string, field models.LineField, raw string) (cart.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap, err := t.cart.UpdateLine(id, field, raw)
	if err != nil {
		return snap, err
	}
	t.metrics.IncCartMutation("update_line")
	return snap, nil
}

// RemoveLine deletes a line; repeated removals are ignored.
func (t *Terminal) RemoveLine(id string) cart.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics.IncCartMutation("remove_line")
	return t.cart.RemoveLine(id)
}

// ClearAll empties the bill once the clerk has confirmed.
func (t *Terminal) ClearAll(confirmed bool) (cart.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !confirmed {
		return t.cart.Snapshot(), ErrClearNotConfirmed
	}
	t.metrics.IncCartMutation("clear")
	t.logger.Info("Bill cleared", "lines", t.cart.Len())
	return t.cart.ClearAll(), nil
}

// SetHeader replaces the customer and invoice details.
func (t *Terminal) SetHeader(h models.BillHeader) cart.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics.IncCartMutation("set_header")
	return t.cart.SetHeader(h)
}

// Pay records the current grand total as a sale. invoiceDate falls back to
// the bill header's date and then to today. A bill whose grand total is not
// positive is refused with ErrEmptyBill and nothing is recorded.
// The bill stays on screen afterwards so it can be printed.
func (t *Terminal) Pay(ctx context.Context, invoiceDate string) (PaymentConfirmation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// The amount charged is the one on the display, i.e. rounded to paise.
	total := calculator.Round2(t.cart.ComputeTotals().GrandTotal)
	if total <= 0 {
		t.metrics.IncRejectedPayment()
		return PaymentConfirmation{}, ErrEmptyBill
	}

	date := strings.TrimSpace(invoiceDate)
	if date == "" {
		date = strings.TrimSpace(t.cart.Header().InvoiceDate)
	}
	if date == "" {
		date = t.now().Format(time.DateOnly)
	}

	sale, durability, err := t.ledger.RecordSale(ctx, date, total)
	if err != nil {
		return PaymentConfirmation{}, fmt.Errorf("failed to record sale: %w", err)
	}
	t.metrics.ObserveSale(string(durability), total)
	t.logger.Info("Sale recorded",
		"date", sale.Date,
		"total", sale.Total,
		"durability", durability,
	)

	return PaymentConfirmation{
		Sale:          sale,
		AmountDisplay: calculator.FormatCurrency(total),
		Durability:    durability,
	}, nil
}

// Report builds the monthly sales report.
func (t *Terminal) Report(ctx context.Context) Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	months := t.ledger.BuildMonthlyReport(ctx)
	lines := make([]ReportLine, len(months))
	for i, m := range months {
		lines[i] = ReportLine{
			Month:        m.Month,
			Total:        m.Total,
			TotalDisplay: calculator.FormatCurrency(m.Total),
		}
	}
	return Report{
		Months:   lines,
		Empty:    len(lines) == 0,
		Degraded: t.ledger.Degraded(),
	}
}

// History returns every recorded sale, oldest first.
func (t *Terminal) History(ctx context.Context) []models.SaleRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.LoadHistory(ctx)
}

package terminal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billdesk/internal/catalog"
	"github.com/mmynk/billdesk/internal/ledger"
	"github.com/mmynk/billdesk/internal/models"
	"github.com/mmynk/billdesk/internal/storage/memory"
	"github.com/mmynk/billdesk/pkg/metrics"
)

var testNow = time.Date(2024, time.January, 20, 11, 0, 0, 0, time.UTC)

func setupTerminal(t *testing.T) (*Terminal, *memory.Store) {
	t.Helper()
	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return testNow }

	term, err := New(Params{
		Catalog: catalog.Default(),
		Ledger:  ledger.New(store, "", ledger.WithClock(clock), ledger.WithLogger(logger)),
		Metrics: metrics.NewBillingMetrics(prometheus.NewRegistry()),
		Clock:   clock,
		Logger:  logger,
	})
	require.NoError(t, err)
	return term, store
}

func TestNewRequiresLedger(t *testing.T) {
	_, err := New(Params{})
	require.Error(t, err)
}

func TestPayRecordsGrandTotal(t *testing.T) {
	ctx := context.Background()
	term, _ := setupTerminal(t)

	_, _, err := term.AddProduct("bed")
	require.NoError(t, err)
	id, _ := term.AddBlankLine()
	_, err = term.UpdateLine(id, models.FieldQuantity, "2")
	require.NoError(t, err)
	_, err = term.UpdateLine(id, models.FieldUnitPrice, "500")
	require.NoError(t, err)

	confirmation, err := term.Pay(ctx, "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, ledger.Persisted, confirmation.Durability)
	assert.Equal(t, "₹26000.00", confirmation.AmountDisplay)
	assert.Equal(t, "2024-01-05", confirmation.Sale.Date)
	assert.Equal(t, 26000.0, confirmation.Sale.Total)

	// The bill stays for printing.
	assert.Len(t, term.Cart().Lines, 2)

	history := term.History(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, confirmation.Sale, history[0])
}

func TestPayRefusesEmptyBill(t *testing.T) {
	ctx := context.Background()
	term, store := setupTerminal(t)

	_, err := term.Pay(ctx, "")
	require.ErrorIs(t, err, ErrEmptyBill)

	// A blank row still totals zero.
	term.AddBlankLine()
	_, err = term.Pay(ctx, "")
	require.ErrorIs(t, err, ErrEmptyBill)

	_, found, _ := store.Get(ctx, ledger.DefaultKey)
	assert.False(t, found)
	assert.Empty(t, term.History(ctx))
}

func TestPayDateFallbacks(t *testing.T) {
	ctx := context.Background()
	term, _ := setupTerminal(t)
	term.AddLine("Pillow", "1", "350")

	confirmation, err := term.Pay(ctx, "  ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-20", confirmation.Sale.Date, "defaults to today")

	term.SetHeader(models.BillHeader{InvoiceDate: "2024-01-18"})
	confirmation, err = term.Pay(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-18", confirmation.Sale.Date, "uses the header date")
}

func TestPayRoundsToDisplayedAmount(t *testing.T) {
	term, _ := setupTerminal(t)
	term.AddLine("Cloth", "2", "10.004")

	confirmation, err := term.Pay(context.Background(), "2024-01-20")
	require.NoError(t, err)
	assert.Equal(t, 20.01, confirmation.Sale.Total)
	assert.Equal(t, "₹20.01", confirmation.AmountDisplay)
}

func TestPayWithFailingStorage(t *testing.T) {
	ctx := context.Background()
	term, store := setupTerminal(t)
	store.FailWrites(errors.New("storage disabled"))
	term.AddLine("Wooden sofa", "1", "18000")

	confirmation, err := term.Pay(ctx, "2024-01-20")
	require.NoError(t, err, "payment must not fail when storage is unavailable")
	assert.Equal(t, ledger.InMemoryOnly, confirmation.Durability)

	report := term.Report(ctx)
	assert.True(t, report.Degraded)
	assert.Equal(t, []ReportLine{{Month: "2024-01", Total: 18000, TotalDisplay: "₹18000.00"}}, report.Months)
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	term, _ := setupTerminal(t)

	report := term.Report(ctx)
	assert.True(t, report.Empty)
	assert.Empty(t, report.Months)

	sales := []struct {
		date  string
		price string
	}{
		{"2024-01-05", "100"},
		{"2024-01-20", "50"},
		{"2024-02-01", "30"},
	}
	for _, s := range sales {
		_, err := term.ClearAll(true)
		require.NoError(t, err)
		term.AddLine("item", "1", s.price)
		_, err = term.Pay(ctx, s.date)
		require.NoError(t, err)
	}

	report = term.Report(ctx)
	assert.False(t, report.Empty)
	assert.Equal(t, []ReportLine{
		{Month: "2024-01", Total: 150, TotalDisplay: "₹150.00"},
		{Month: "2024-02", Total: 30, TotalDisplay: "₹30.00"},
	}, report.Months)
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	term, _ := setupTerminal(t)
	term.AddLine("Lamp", "1", "900")

	snap, err := term.ClearAll(false)
	require.ErrorIs(t, err, ErrClearNotConfirmed)
	assert.Len(t, snap.Lines, 1)

	snap, err = term.ClearAll(true)
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
}

func TestConcurrentEditsKeepTotalsConsistent(t *testing.T) {
	term, _ := setupTerminal(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := term.AddLine("item", "1", "10")
			if i%2 == 0 {
				term.RemoveLine(id)
			}
		}()
	}
	wg.Wait()

	snap := term.Cart()
	assert.Len(t, snap.Lines, 10)
	assert.Equal(t, 100.0, snap.Totals.GrandTotal)
}

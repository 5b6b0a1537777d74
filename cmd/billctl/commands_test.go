package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billdesk/internal/ledger"
	"github.com/mmynk/billdesk/internal/service"
	"github.com/mmynk/billdesk/internal/storage/memory"
	"github.com/mmynk/billdesk/internal/terminal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).RunContext(context.Background(), append([]string{"billctl"}, args...))
	return out.String(), err
}

func TestRecordAndReport(t *testing.T) {
	db := filepath.Join(t.TempDir(), "billing.db")
	global := []string{"--backend", "sqlite", "--db", db}

	for _, sale := range [][2]string{
		{"2024-01-05", "100"},
		{"2024-02-01", "30"},
		{"2024-01-20", "50"},
	} {
		out, err := run(t, append(global, "record", "--date", sale[0], "--total", sale[1])...)
		require.NoError(t, err)
		assert.Contains(t, out, "Recorded")
	}

	out, err := run(t, append(global, "report")...)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01  ₹150.00")
	assert.Contains(t, out, "2024-02  ₹30.00")
	assert.Less(t, bytes.Index([]byte(out), []byte("2024-01")), bytes.Index([]byte(out), []byte("2024-02")))

	out, err = run(t, append(global, "history")...)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-20")
	assert.Contains(t, out, "₹50.00")
}

func TestRecordRejectsNonPositiveTotal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "billing.db")

	for _, total := range []string{"0", "-20", "abc"} {
		_, err := run(t, "--backend", "sqlite", "--db", db, "record", "--date", "2024-01-01", "--total", total)
		require.ErrorIs(t, err, ledger.ErrNonPositiveTotal, "total %q", total)
	}

	out, err := run(t, "--backend", "sqlite", "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sales recorded yet.")
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "wooden-sofa")
	assert.Contains(t, out, "₹25000.00")
}

func TestReceipt(t *testing.T) {
	store := memory.New()
	term, err := terminal.New(terminal.Params{Ledger: ledger.New(store, ledger.DefaultKey)})
	require.NoError(t, err)
	_, _, err = term.AddProduct("bed")
	require.NoError(t, err)

	path, handler := service.NewBillingServiceHandler(service.NewBillingService(term))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	outFile := filepath.Join(t.TempDir(), "bill.pdf")
	out, err := run(t, "receipt", "--server", server.URL, "--out", outFile)
	require.NoError(t, err)
	assert.Contains(t, out, "1 lines")
	assert.Contains(t, out, "₹25000.00")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

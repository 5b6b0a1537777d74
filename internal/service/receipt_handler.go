package service

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mmynk/billdesk/internal/receipt"
	"github.com/mmynk/billdesk/internal/terminal"
)

// ReceiptHandler serves the current bill as a printable PDF.
func ReceiptHandler(term *terminal.Terminal, shopName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var buf bytes.Buffer
		if err := receipt.Render(&buf, term.Cart(), receipt.Options{ShopName: shopName}); err != nil {
			slog.Error("Receipt render failed", "error", err)
			http.Error(w, "failed to render receipt", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename="bill.pdf"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			slog.Warn("Receipt write failed", "error", err)
		}
	})
}

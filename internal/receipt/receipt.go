// Package receipt renders the current bill as a printable PDF.
package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mmynk/billdesk/internal/calculator"
	"github.com/mmynk/billdesk/internal/cart"
)

// DefaultShopName heads every receipt unless overridden.
const DefaultShopName = "Star Furniture & Bedding Works"

// Options controls receipt rendering.
type Options struct {
	ShopName    string
	GeneratedAt time.Time
	// Uncompressed disables stream compression; handy when inspecting output.
	Uncompressed bool
}

// column widths in mm; they add up to the printable A4 width.
var colWidths = []float64{90, 25, 35, 40}

// Render writes snap as an A4 PDF to w.
func Render(w io.Writer, snap cart.Snapshot, opts Options) error {
	if opts.ShopName == "" {
		opts.ShopName = DefaultShopName
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetTitle(opts.ShopName+" - Bill", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(opts.ShopName), "", 1, "C", false, 0, "")

	h := snap.Header
	pdf.SetFont("Arial", "", 10)
	headerLines := [][2]string{
		{"Invoice #", h.InvoiceNumber},
		{"Date", h.InvoiceDate},
		{"Customer", h.CustomerName},
		{"Phone", h.CustomerPhone},
		{"Address", h.CustomerAddress},
	}
	for _, l := range headerLines {
		if strings.TrimSpace(l[1]) == "" {
			continue
		}
		pdf.CellFormat(30, 6, l[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(l[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range []string{"Description", "Qty", "Unit price", "Line total"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], 8, title, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, line := range snap.Lines {
		desc := line.Description
		if strings.TrimSpace(desc) == "" {
			desc = "-"
		}
		pdf.CellFormat(colWidths[0], 7, tr(desc), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, formatNumber(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, amountText(calculator.ParseAmount(line.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, amountText(line.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	labelWidth := colWidths[0] + colWidths[1] + colWidths[2]
	pdf.CellFormat(labelWidth, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 7, amountText(snap.Totals.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(labelWidth, 8, "Grand total", "", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, amountText(snap.Totals.GrandTotal), "", 1, "R", false, 0, "")

	if notes := strings.TrimSpace(h.Notes); notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr("Notes: "+notes), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, "Generated "+opts.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return nil
}

// amountText formats an amount for the PDF. The core fonts have no rupee
// glyph, so "Rs." replaces the symbol.
func amountText(v float64) string {
	return "Rs. " + strings.TrimPrefix(calculator.FormatCurrency(v), calculator.CurrencySymbol)
}

func formatNumber(raw string) string {
	v := calculator.ParseAmount(raw)
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
